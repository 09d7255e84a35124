package handler

import (
	"github.com/gofiber/fiber/v2"

	"bizreview/internal/http/middleware"
)

// Decode echoes the verified token claims. It must run behind middleware.RequireJWT.
//
// @Summary Show verified JWT claims
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} errorPayload
// @Router /decode [get]
func Decode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", msgUnauthorized)
		}
		return c.JSON(claims)
	}
}
