package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"unicode/utf8"

	"bizreview/internal/events"
	"bizreview/internal/model"
)

var (
	ErrBusinessNotFound     = errors.New("business not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrDuplicateReview      = errors.New("review already exists for this user and business")
	ErrNoBusinessesForOwner = errors.New("owner has no businesses")
	ErrInvalidAttributes    = errors.New("invalid attributes")
)

// Column limits of the MySQL schema.
const (
	maxNameLen          = 50
	maxStreetAddressLen = 100
	maxCityLen          = 50
	stateLen            = 2
	maxReviewTextLen    = 1000
	minStars            = 0
	maxStars            = 5
	// Ids are INT columns.
	maxID = math.MaxInt32
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAttributes, fmt.Sprintf(format, args...))
}

func validID(id int64) bool {
	return id > 0 && id <= maxID
}

func validateBusiness(b model.Business) error {
	switch {
	case !validID(b.OwnerID):
		return invalid("owner_id must be between 1 and %d", maxID)
	case b.Name == "" || utf8.RuneCountInString(b.Name) > maxNameLen:
		return invalid("name must be 1-%d characters", maxNameLen)
	case b.StreetAddress == "" || utf8.RuneCountInString(b.StreetAddress) > maxStreetAddressLen:
		return invalid("street_address must be 1-%d characters", maxStreetAddressLen)
	case b.City == "" || utf8.RuneCountInString(b.City) > maxCityLen:
		return invalid("city must be 1-%d characters", maxCityLen)
	case utf8.RuneCountInString(b.State) != stateLen:
		return invalid("state must be %d characters", stateLen)
	case !b.ZipCode.Valid():
		return invalid("zip_code must have at most 5 digits")
	}
	return nil
}

func validateStars(stars int) error {
	if stars < minStars || stars > maxStars {
		return invalid("stars must be between %d and %d", minStars, maxStars)
	}
	return nil
}

func validateReviewText(text string) error {
	if utf8.RuneCountInString(text) > maxReviewTextLen {
		return invalid("review_text must be at most %d characters", maxReviewTextLen)
	}
	return nil
}

// publish delivers e and only logs a failure.
func publish(ctx context.Context, pub events.Publisher, log *slog.Logger, e events.Event) {
	if err := pub.Publish(ctx, e); err != nil {
		log.Warn("event_publish_failed",
			"event", string(e.Type),
			"resource_id", e.ResourceID,
			"error", err.Error(),
		)
	}
}
