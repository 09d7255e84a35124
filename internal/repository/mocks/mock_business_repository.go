package mocks

import (
	"context"

	"bizreview/internal/model"
	"bizreview/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockBusinessRepository struct {
	mock.Mock
}

var _ repository.BusinessRepository = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) Create(ctx context.Context, b *model.Business) (*model.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id int64) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) List(ctx context.Context, pq repository.PageQuery) ([]model.Business, error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

func (m *MockBusinessRepository) Update(ctx context.Context, b *model.Business) (*model.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
