package repository

import (
	"context"

	"dashboard/internal/model"
)

// ItemRepository defines data access for inventory items using SQL queries only.
type ItemRepository interface {
	// Create inserts a new item row. The caller provides the server-generated
	// ID and timestamps.
	Create(ctx context.Context, it *model.Item) (*model.Item, error)

	// Update rewrites the mutable fields and refreshes updated_at.
	// ID and created_at are immutable.
	Update(ctx context.Context, it *model.Item) error

	// FindByID returns an item by its ID.
	FindByID(ctx context.Context, id string) (*model.Item, error)

	// List returns a filtered, paginated page of items ordered by name.
	// The search string matches name and description case-insensitively.
	List(ctx context.Context, q ListQuery) (*PageResult[model.Item], error)

	// Delete removes an item by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
