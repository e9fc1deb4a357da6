package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dashboard/internal/model"
	"dashboard/internal/service"
)

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, form map[string]string) *service.MutationResult {
	args := m.Called(ctx, form)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockInvoiceService) Update(ctx context.Context, id string, form map[string]string) *service.MutationResult {
	args := m.Called(ctx, id, form)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id string) *service.MutationResult {
	args := m.Called(ctx, id)
	return args.Get(0).(*service.MutationResult)
}

func (m *MockInvoiceService) Get(ctx context.Context, id string) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, search string, page int) (*service.ListPage[model.InvoiceWithCustomer], error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListPage[model.InvoiceWithCustomer]), args.Error(1)
}
