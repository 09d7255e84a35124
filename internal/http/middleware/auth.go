package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"bizreview/internal/auth"
	"bizreview/internal/logger"
)

// ClaimsLocalKey holds the verified jwt.MapClaims of the request.
const ClaimsLocalKey = "jwt_claims"

// TokenVerifier is satisfied by *auth.Verifier.
type TokenVerifier interface {
	Verify(token string) (jwt.MapClaims, error)
}

// RequireJWT rejects requests without a valid bearer token with fiber.ErrUnauthorized.
// A nil verifier disables the check.
func RequireJWT(v TokenVerifier) fiber.Handler {
	if v == nil {
		return Noop()
	}
	log := logger.Named("auth")

	return func(c *fiber.Ctx) error {
		token, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if err == nil {
			var claims jwt.MapClaims
			if claims, err = v.Verify(token); err == nil {
				c.Locals(ClaimsLocalKey, claims)
				return c.Next()
			}
		}
		log.Info("auth_rejected",
			"request_id", RequestIDFromCtx(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		return fiber.ErrUnauthorized
	}
}

// ClaimsFromCtx returns claims stored by RequireJWT.
func ClaimsFromCtx(c *fiber.Ctx) (jwt.MapClaims, bool) {
	claims, ok := c.Locals(ClaimsLocalKey).(jwt.MapClaims)
	return claims, ok
}
