package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dashboard/internal/model"
	"dashboard/internal/service"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, form map[string]string, photo *service.Upload) *service.MutationResult {
	args := m.Called(ctx, form, photo)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockCustomerService) Update(ctx context.Context, id string, form map[string]string, photo service.PhotoChange) *service.MutationResult {
	args := m.Called(ctx, id, form, photo)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockCustomerService) Delete(ctx context.Context, id string) *service.MutationResult {
	args := m.Called(ctx, id)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockCustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, search string, page int) (*service.ListPage[model.Customer], error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListPage[model.Customer]), args.Error(1)
}

func (m *MockCustomerService) All(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}
