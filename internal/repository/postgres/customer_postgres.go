package postgres

import (
	"context"
	"database/sql"

	"dashboard/internal/model"
	"dashboard/internal/repository"
)

// CustomerPostgres is a PostgreSQL implementation of repository.CustomerRepository.
type CustomerPostgres struct {
	db *sql.DB
}

// NewCustomerPostgres creates a new CustomerPostgres repository.
func NewCustomerPostgres(db *sql.DB) *CustomerPostgres {
	return &CustomerPostgres{db: db}
}

var _ repository.CustomerRepository = (*CustomerPostgres)(nil)

// Create inserts a new customer row and returns the stored record.
// ImageURL is stored as-is; the empty string means "no image".
func (r *CustomerPostgres) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	const q = `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, image_url
	`
	row := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Email, c.ImageURL)
	var out model.Customer
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.ImageURL); err != nil {
		return nil, wrapErr(err)
	}
	return &out, nil
}

// Update rewrites name and email only, leaving image_url untouched.
func (r *CustomerPostgres) Update(ctx context.Context, id, name, email string) error {
	const q = `
		UPDATE customers
		SET name = $1, email = $2
		WHERE id = $3
	`
	if _, err := r.db.ExecContext(ctx, q, name, email, id); err != nil {
		return wrapErr(err)
	}
	return nil
}

// UpdateWithImage rewrites name, email, and image_url in one statement.
// An empty imageURL clears the stored reference.
func (r *CustomerPostgres) UpdateWithImage(ctx context.Context, id, name, email, imageURL string) error {
	const q = `
		UPDATE customers
		SET name = $1, email = $2, image_url = $3
		WHERE id = $4
	`
	if _, err := r.db.ExecContext(ctx, q, name, email, imageURL, id); err != nil {
		return wrapErr(err)
	}
	return nil
}

// FindByID fetches a single customer by its ID.
func (r *CustomerPostgres) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	const q = `
		SELECT id, name, email, image_url
		FROM customers
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
		return nil, wrapErr(err)
	}
	return &c, nil
}

// List returns a filtered page of customers ordered by name. The search
// string matches name or email case-insensitively.
func (r *CustomerPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Customer], error) {
	const qCount = `
		SELECT COUNT(*)
		FROM customers
		WHERE name ILIKE $1 OR email ILIKE $1
	`
	pattern := likePattern(lq.Search)
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pattern).Scan(&total); err != nil {
		return nil, wrapErr(err)
	}

	const qList = `
		SELECT id, name, email, image_url
		FROM customers
		WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, pattern, repository.PageSize, lq.Offset())
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	items := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, wrapErr(err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}

	return &repository.PageResult[model.Customer]{
		Items:      items,
		Total:      total,
		TotalPages: repository.PageCount(total),
	}, nil
}

// All returns every customer ordered by name.
func (r *CustomerPostgres) All(ctx context.Context) ([]model.Customer, error) {
	const q = `
		SELECT id, name, email, image_url
		FROM customers
		ORDER BY name ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	items := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, wrapErr(err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return items, nil
}

// Delete removes a customer by ID. It does not return an error if the row does not exist.
func (r *CustomerPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM customers WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return wrapErr(err)
	}
	_, _ = res.RowsAffected()
	return nil
}
