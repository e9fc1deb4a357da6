package repository

import (
	"context"

	"dashboard/internal/model"
)

// InvoiceRepository defines data access for invoices using SQL queries only.
// No business logic here — strictly persistence operations.
type InvoiceRepository interface {
	// Create inserts a new invoice row. The caller provides the
	// server-generated ID and issue date.
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)

	// Update rewrites the mutable fields of an existing invoice.
	// ID and issue date are immutable.
	Update(ctx context.Context, inv *model.Invoice) error

	// FindByID returns an invoice by its ID.
	FindByID(ctx context.Context, id string) (*model.Invoice, error)

	// List returns a filtered, paginated page of invoices joined with their
	// customers' display data, ordered by issue date descending.
	List(ctx context.Context, q ListQuery) (*PageResult[model.InvoiceWithCustomer], error)

	// Delete removes an invoice by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
