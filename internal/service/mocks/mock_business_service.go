package mocks

import (
	"context"

	"bizreview/internal/model"
	"bizreview/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockBusinessService struct {
	mock.Mock
}

var _ service.BusinessService = (*MockBusinessService)(nil)

func (m *MockBusinessService) Create(ctx context.Context, b model.Business) (*model.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessService) Get(ctx context.Context, id int64) (*model.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessService) List(ctx context.Context, limit, offset int) (*service.BusinessPage, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BusinessPage), args.Error(1)
}

func (m *MockBusinessService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Business), args.Error(1)
}

func (m *MockBusinessService) Update(ctx context.Context, b model.Business) (*model.Business, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Business), args.Error(1)
}

func (m *MockBusinessService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
