package postgres

import (
	"context"
	"database/sql"

	"dashboard/internal/model"
	"dashboard/internal/repository"
)

// ItemPostgres is a PostgreSQL implementation of repository.ItemRepository.
type ItemPostgres struct {
	db *sql.DB
}

// NewItemPostgres creates a new ItemPostgres repository.
func NewItemPostgres(db *sql.DB) *ItemPostgres {
	return &ItemPostgres{db: db}
}

var _ repository.ItemRepository = (*ItemPostgres)(nil)

// Create inserts a new item row and returns the stored record.
func (r *ItemPostgres) Create(ctx context.Context, it *model.Item) (*model.Item, error) {
	const q = `
		INSERT INTO items (id, name, description, price, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, description, price, unit, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		it.ID,
		it.Name,
		it.Description,
		it.Price,
		it.Unit,
		it.CreatedAt,
		it.UpdatedAt,
	)
	var out model.Item
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Description,
		&out.Price,
		&out.Unit,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, wrapErr(err)
	}
	return &out, nil
}

// Update rewrites the mutable fields and refreshes updated_at. created_at is
// never touched.
func (r *ItemPostgres) Update(ctx context.Context, it *model.Item) error {
	const q = `
		UPDATE items
		SET name = $1, description = $2, price = $3, unit = $4, updated_at = $5
		WHERE id = $6
	`
	if _, err := r.db.ExecContext(ctx, q,
		it.Name,
		it.Description,
		it.Price,
		it.Unit,
		it.UpdatedAt,
		it.ID,
	); err != nil {
		return wrapErr(err)
	}
	return nil
}

// FindByID fetches a single item by its ID.
func (r *ItemPostgres) FindByID(ctx context.Context, id string) (*model.Item, error) {
	const q = `
		SELECT id, name, description, price, unit, created_at, updated_at
		FROM items
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var it model.Item
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Price,
		&it.Unit,
		&it.CreatedAt,
		&it.UpdatedAt,
	); err != nil {
		return nil, wrapErr(err)
	}
	return &it, nil
}

// List returns a filtered page of items ordered by name. The search string
// matches name or description case-insensitively.
func (r *ItemPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Item], error) {
	const qCount = `
		SELECT COUNT(*)
		FROM items
		WHERE name ILIKE $1 OR description ILIKE $1
	`
	pattern := likePattern(lq.Search)
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pattern).Scan(&total); err != nil {
		return nil, wrapErr(err)
	}

	const qList = `
		SELECT id, name, description, price, unit, created_at, updated_at
		FROM items
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, pattern, repository.PageSize, lq.Offset())
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Description,
			&it.Price,
			&it.Unit,
			&it.CreatedAt,
			&it.UpdatedAt,
		); err != nil {
			return nil, wrapErr(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}

	return &repository.PageResult[model.Item]{
		Items:      items,
		Total:      total,
		TotalPages: repository.PageCount(total),
	}, nil
}

// Delete removes an item by ID. It does not return an error if the row does not exist.
func (r *ItemPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM items WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return wrapErr(err)
	}
	_, _ = res.RowsAffected()
	return nil
}
