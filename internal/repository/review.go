package repository

import (
	"context"

	"bizreview/internal/model"
)

// ReviewRepository defines data access for reviews.
type ReviewRepository interface {
	// Create inserts a review. It returns ErrDuplicate when the user already
	// reviewed the business and ErrReferenceNotFound when the business is absent.
	Create(ctx context.Context, r *model.Review) (*model.Review, error)

	FindByID(ctx context.Context, id int64) (*model.Review, error)

	// FindByUserAndBusiness returns the user's review of the business or ErrNotFound.
	FindByUserAndBusiness(ctx context.Context, userID, businessID int64) (*model.Review, error)

	// Update sets stars and, when text is non-nil, the review text.
	Update(ctx context.Context, id int64, stars int, text *string) (*model.Review, error)

	Delete(ctx context.Context, id int64) error

	// ListByUser returns the user's reviews ordered by ID.
	ListByUser(ctx context.Context, userID int64) ([]model.Review, error)
}
