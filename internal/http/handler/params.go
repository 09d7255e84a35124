package handler

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pathID parses a positive INT-sized path parameter. On failure the 400
// response is already written and ok is false.
func pathID(c *fiber.Ctx, name string) (id int64, ok bool, err error) {
	id, perr := strconv.ParseInt(c.Params(name), 10, 64)
	if perr != nil || id <= 0 || id > math.MaxInt32 {
		return 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}

// queryInt reads a non-negative integer query parameter. Missing or
// malformed values fall back to def.
func queryInt(c *fiber.Ctx, name string, def int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// decodeBody unmarshals the JSON body into dst. On failure the 400 response
// is already written and ok is false.
func decodeBody(c *fiber.Ctx, dst any) (ok bool, err error) {
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidBody)
	}
	return true, nil
}
