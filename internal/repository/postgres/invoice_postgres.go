package postgres

import (
	"context"
	"database/sql"

	"dashboard/internal/model"
	"dashboard/internal/repository"
)

// InvoicePostgres is a PostgreSQL implementation of repository.InvoiceRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type InvoicePostgres struct {
	db *sql.DB
}

// NewInvoicePostgres creates a new InvoicePostgres repository.
func NewInvoicePostgres(db *sql.DB) *InvoicePostgres {
	return &InvoicePostgres{db: db}
}

var _ repository.InvoiceRepository = (*InvoicePostgres)(nil)

// Create inserts a new invoice row and returns the stored record.
func (r *InvoicePostgres) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	const q = `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, customer_id, amount, status, date
	`
	row := r.db.QueryRowContext(ctx, q,
		inv.ID,
		inv.CustomerID,
		inv.AmountCents,
		inv.Status,
		inv.Date,
	)
	var out model.Invoice
	if err := row.Scan(
		&out.ID,
		&out.CustomerID,
		&out.AmountCents,
		&out.Status,
		&out.Date,
	); err != nil {
		return nil, wrapErr(err)
	}
	return &out, nil
}

// Update rewrites the mutable fields of an invoice. The issue date is immutable.
func (r *InvoicePostgres) Update(ctx context.Context, inv *model.Invoice) error {
	const q = `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`
	if _, err := r.db.ExecContext(ctx, q, inv.CustomerID, inv.AmountCents, inv.Status, inv.ID); err != nil {
		return wrapErr(err)
	}
	return nil
}

// FindByID fetches a single invoice by its ID.
func (r *InvoicePostgres) FindByID(ctx context.Context, id string) (*model.Invoice, error) {
	const q = `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var inv model.Invoice
	if err := row.Scan(
		&inv.ID,
		&inv.CustomerID,
		&inv.AmountCents,
		&inv.Status,
		&inv.Date,
	); err != nil {
		return nil, wrapErr(err)
	}
	return &inv, nil
}

// List returns invoices joined with customer display data. The search string
// matches the customer's name or email case-insensitively.
func (r *InvoicePostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.InvoiceWithCustomer], error) {
	const qCount = `
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
	`
	pattern := likePattern(lq.Search)
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pattern).Scan(&total); err != nil {
		return nil, wrapErr(err)
	}

	const qList = `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date, c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		ORDER BY i.date DESC, i.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, pattern, repository.PageSize, lq.Offset())
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	items := make([]model.InvoiceWithCustomer, 0)
	for rows.Next() {
		var row model.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID,
			&row.CustomerID,
			&row.AmountCents,
			&row.Status,
			&row.Date,
			&row.CustomerName,
			&row.CustomerEmail,
			&row.CustomerImage,
		); err != nil {
			return nil, wrapErr(err)
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}

	return &repository.PageResult[model.InvoiceWithCustomer]{
		Items:      items,
		Total:      total,
		TotalPages: repository.PageCount(total),
	}, nil
}

// Delete removes an invoice by ID. It does not return an error if the row does not exist.
func (r *InvoicePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM invoices WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return wrapErr(err)
	}
	_, _ = res.RowsAffected()
	return nil
}
