package mocks

import (
	"context"

	"bizreview/internal/model"
	"bizreview/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockReviewService struct {
	mock.Mock
}

var _ service.ReviewService = (*MockReviewService)(nil)

func (m *MockReviewService) Create(ctx context.Context, r model.Review) (*model.Review, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id int64) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, id int64, stars int, text *string) (*model.Review, error) {
	args := m.Called(ctx, id, stars, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewService) ListByUser(ctx context.Context, userID int64) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}
