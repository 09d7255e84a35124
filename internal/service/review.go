package service

import (
	"context"
	"errors"
	"log/slog"

	"bizreview/internal/events"
	"bizreview/internal/logger"
	"bizreview/internal/model"
	"bizreview/internal/repository"
)

var ErrNoReviewsForUser = errors.New("user has no reviews")

// ReviewService defines the use cases for handling reviews.
type ReviewService interface {
	// Create stores a review. A user may review a business only once.
	Create(ctx context.Context, r model.Review) (*model.Review, error)
	Get(ctx context.Context, id int64) (*model.Review, error)
	// Update sets stars and, when text is non-nil, replaces the review text.
	Update(ctx context.Context, id int64, stars int, text *string) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Review, error)
}

type reviewService struct {
	reviews    repository.ReviewRepository
	businesses repository.BusinessRepository
	pub        events.Publisher
	log        *slog.Logger
}

func NewReviewService(reviews repository.ReviewRepository, businesses repository.BusinessRepository, pub events.Publisher) ReviewService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &reviewService{
		reviews:    reviews,
		businesses: businesses,
		pub:        pub,
		log:        logger.Named("review_service"),
	}
}

func (s *reviewService) Create(ctx context.Context, r model.Review) (*model.Review, error) {
	if !validID(r.UserID) || !validID(r.BusinessID) {
		return nil, invalid("user_id and business_id must be between 1 and %d", maxID)
	}
	if err := validateStars(r.Stars); err != nil {
		return nil, err
	}
	if err := validateReviewText(r.ReviewText); err != nil {
		return nil, err
	}

	if _, err := s.businesses.FindByID(ctx, r.BusinessID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	switch _, err := s.reviews.FindByUserAndBusiness(ctx, r.UserID, r.BusinessID); {
	case err == nil:
		return nil, ErrDuplicateReview
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	r.ID = 0
	created, err := s.reviews.Create(ctx, &r)
	if err != nil {
		// The business may vanish or a concurrent review may land between the checks and the insert.
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrDuplicateReview
		case errors.Is(err, repository.ErrReferenceNotFound):
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	publish(ctx, s.pub, s.log, events.New(events.ReviewCreated, created.ID, created))
	return created, nil
}

func (s *reviewService) Get(ctx context.Context, id int64) (*model.Review, error) {
	r, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *reviewService) Update(ctx context.Context, id int64, stars int, text *string) (*model.Review, error) {
	if err := validateStars(stars); err != nil {
		return nil, err
	}
	if text != nil {
		if err := validateReviewText(*text); err != nil {
			return nil, err
		}
	}
	updated, err := s.reviews.Update(ctx, id, stars, text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	publish(ctx, s.pub, s.log, events.New(events.ReviewUpdated, updated.ID, updated))
	return updated, nil
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	publish(ctx, s.pub, s.log, events.New(events.ReviewDeleted, id, nil))
	return nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	items, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoReviewsForUser
	}
	return items, nil
}
