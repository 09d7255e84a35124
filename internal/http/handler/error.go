package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bizreview/internal/http/middleware"
	"bizreview/internal/logger"
	"bizreview/internal/service"
)

// Client-facing messages.
const (
	msgMissingAttributes = "The request body is missing at least one of the required attributes"
	msgInvalidBody       = "The request body is not valid JSON"
	msgNoBusiness        = "No business with this business_id exists"
	msgNoReview          = "No review with this review_id exists"
	msgNoOwnerBusinesses = "No businesses found for this owner"
	msgDuplicateReview   = "You have already submitted a review for this business. You can update your previous review, or delete it and submit a new review"
	msgUnauthorized      = "Invalid JWT / Unauthorized access."
	msgInternal          = "internal server error"
)

// errorPayload defines the standardized error response body.
// The capitalised Error key is what existing API clients read.
type errorPayload struct {
	Error     string `json:"Error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     message,
		Code:      code,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// writeServiceError maps service sentinels to HTTP responses. Anything
// unrecognised is logged and reported as a 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidAttributes):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ATTRIBUTES", err.Error())
	case errors.Is(err, service.ErrBusinessNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msgNoBusiness)
	case errors.Is(err, service.ErrReviewNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msgNoReview)
	case errors.Is(err, service.ErrNoBusinessesForOwner):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msgNoOwnerBusinesses)
	case errors.Is(err, service.ErrDuplicateReview):
		return writeError(c, fiber.StatusConflict, "DUPLICATE_REVIEW", msgDuplicateReview)
	}

	logger.Named("http").Error("request_failed",
		"request_id", middleware.RequestIDFromCtx(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", msgInternal)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", msgUnauthorized)
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "BODY_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", msgInternal)
		}
	}
}
