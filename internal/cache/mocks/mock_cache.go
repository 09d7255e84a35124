package mocks

import (
	"context"

	"bizreview/internal/cache"
	"bizreview/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockBusinessCache struct {
	mock.Mock
}

var _ cache.BusinessCache = (*MockBusinessCache)(nil)

func (m *MockBusinessCache) Get(ctx context.Context, id int64) (*model.Business, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Business), args.Bool(1), args.Error(2)
}

func (m *MockBusinessCache) Set(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBusinessCache) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
