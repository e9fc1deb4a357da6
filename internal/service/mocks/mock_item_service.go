package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dashboard/internal/model"
	"dashboard/internal/service"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, form map[string]string) *service.MutationResult {
	args := m.Called(ctx, form)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockItemService) Update(ctx context.Context, id string, form map[string]string) *service.MutationResult {
	args := m.Called(ctx, id, form)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockItemService) Delete(ctx context.Context, id string) *service.MutationResult {
	args := m.Called(ctx, id)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, search string, page int) (*service.ListPage[model.Item], error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListPage[model.Item]), args.Error(1)
}
