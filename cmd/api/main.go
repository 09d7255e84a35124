package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title Business Review API
// @version 1.0
// @description Businesses and the reviews users leave for them.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
