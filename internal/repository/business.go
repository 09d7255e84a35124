package repository

import (
	"context"

	"bizreview/internal/model"
)

// BusinessRepository defines data access for businesses using SQL queries only.
// Implementations hold no business rules, only persistence.
type BusinessRepository interface {
	// Create inserts a new business and returns it with the generated ID.
	Create(ctx context.Context, b *model.Business) (*model.Business, error)

	// FindByID returns a business by its ID or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Business, error)

	// List returns one page of businesses ordered by ID.
	List(ctx context.Context, pq PageQuery) ([]model.Business, error)

	// ListByOwner returns every business of the owner ordered by ID.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Business, error)

	// Update overwrites all mutable columns of b.ID. It returns ErrNotFound if the row is absent.
	Update(ctx context.Context, b *model.Business) (*model.Business, error)

	// Delete removes the business and all of its reviews atomically.
	// It returns ErrNotFound if the business is absent.
	Delete(ctx context.Context, id int64) error
}
