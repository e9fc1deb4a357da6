package repository

import (
	"context"

	"dashboard/internal/model"
)

// CustomerRepository defines data access for customers using SQL queries only.
type CustomerRepository interface {
	// Create inserts a new customer row. ImageURL may be the empty string.
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)

	// Update rewrites name and email, leaving the stored image reference
	// untouched.
	Update(ctx context.Context, id, name, email string) error

	// UpdateWithImage rewrites name, email, and the image reference.
	// Passing an empty imageURL clears the stored reference.
	UpdateWithImage(ctx context.Context, id, name, email, imageURL string) error

	// FindByID returns a customer by its ID.
	FindByID(ctx context.Context, id string) (*model.Customer, error)

	// List returns a filtered, paginated page of customers ordered by name.
	List(ctx context.Context, q ListQuery) (*PageResult[model.Customer], error)

	// All returns every customer ordered by name, for the invoice form's
	// customer selector.
	All(ctx context.Context) ([]model.Customer, error)

	// Delete removes a customer by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
