package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dashboard/internal/model"
	"dashboard/internal/repository"
	"dashboard/internal/validation"
)

// InvoiceService defines the use cases for invoices.
type InvoiceService interface {
	// Create validates the submitted form and inserts a new invoice with a
	// server-generated ID and today's issue date.
	Create(ctx context.Context, form map[string]string) *MutationResult

	// Update validates the submitted form and rewrites the invoice's mutable
	// fields. The identifier is passed explicitly and never taken from the form.
	Update(ctx context.Context, id string, form map[string]string) *MutationResult

	// Delete removes the invoice. No validation or redirect; the caller
	// re-renders the listing in place.
	Delete(ctx context.Context, id string) *MutationResult

	// Get returns a single invoice for the edit form.
	Get(ctx context.Context, id string) (*model.Invoice, error)

	// List returns a filtered, paginated listing page joined with customers.
	List(ctx context.Context, search string, page int) (*ListPage[model.InvoiceWithCustomer], error)
}

type invoiceService struct {
	repo repository.InvoiceRepository
}

// NewInvoiceService constructs a new InvoiceService.
func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func (s *invoiceService) Create(ctx context.Context, form map[string]string) *MutationResult {
	in, fe := validation.ParseInvoiceForm(form)
	if !fe.Empty() {
		return invalid(fe, "Missing fields. Failed to create invoice.")
	}

	inv := &model.Invoice{
		ID:          uuid.NewString(),
		CustomerID:  in.CustomerID,
		AmountCents: in.AmountCents,
		Status:      in.Status,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
	}
	if _, err := s.repo.Create(ctx, inv); err != nil {
		logError("invoice_create_failed", "invoice", err)
		return failed("Database Error: Failed to create invoice.")
	}

	return succeeded([]string{InvoicesRoute}, InvoicesRoute)
}

func (s *invoiceService) Update(ctx context.Context, id string, form map[string]string) *MutationResult {
	in, fe := validation.ParseInvoiceForm(form)
	if !fe.Empty() {
		return invalid(fe, "Missing fields. Failed to update invoice.")
	}

	inv := &model.Invoice{
		ID:          id,
		CustomerID:  in.CustomerID,
		AmountCents: in.AmountCents,
		Status:      in.Status,
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		logError("invoice_update_failed", "invoice", err)
		return failed("Database Error: Failed to update invoice.")
	}

	return succeeded([]string{InvoicesRoute}, InvoicesRoute)
}

func (s *invoiceService) Delete(ctx context.Context, id string) *MutationResult {
	if err := s.repo.Delete(ctx, id); err != nil {
		logError("invoice_delete_failed", "invoice", err)
		return failed("Database Error: Failed to delete invoice.")
	}
	return succeeded([]string{InvoicesRoute}, "")
}

func (s *invoiceService) Get(ctx context.Context, id string) (*model.Invoice, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, search string, page int) (*ListPage[model.InvoiceWithCustomer], error) {
	if page < 1 {
		page = 1
	}
	res, err := s.repo.List(ctx, repository.ListQuery{Search: search, Page: page})
	if err != nil {
		return nil, err
	}
	return &ListPage[model.InvoiceWithCustomer]{
		Items:      res.Items,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}, nil
}
