package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dashboard/internal/model"
	"dashboard/internal/repository"
	"dashboard/internal/validation"
)

// ItemService defines the use cases for inventory items.
type ItemService interface {
	// Create validates the form and inserts a new item with server-assigned
	// ID and timestamps.
	Create(ctx context.Context, form map[string]string) *MutationResult

	// Update validates the form, rewrites the mutable fields, and refreshes
	// updated_at. ID and created_at are immutable.
	Update(ctx context.Context, id string, form map[string]string) *MutationResult

	// Delete removes the item. No validation or redirect.
	Delete(ctx context.Context, id string) *MutationResult

	// Get returns a single item for the edit form.
	Get(ctx context.Context, id string) (*model.Item, error)

	// List returns a filtered, paginated item page.
	List(ctx context.Context, search string, page int) (*ListPage[model.Item], error)
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService constructs a new ItemService.
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, form map[string]string) *MutationResult {
	in, fe := validation.ParseItemForm(form)
	if !fe.Empty() {
		return invalid(fe, "Missing or invalid fields. Failed to create item.")
	}

	now := time.Now().UTC()
	it := &model.Item{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.repo.Create(ctx, it); err != nil {
		logError("item_create_failed", "item", err)
		return failed("Database Error: Failed to create item.")
	}

	return succeeded([]string{ItemsRoute}, ItemsRoute)
}

func (s *itemService) Update(ctx context.Context, id string, form map[string]string) *MutationResult {
	in, fe := validation.ParseItemForm(form)
	if !fe.Empty() {
		return invalid(fe, "Missing or invalid fields. Failed to update item.")
	}

	it := &model.Item{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, it); err != nil {
		logError("item_update_failed", "item", err)
		return failed("Database Error: Failed to update item.")
	}

	return succeeded([]string{ItemsRoute}, ItemsRoute)
}

func (s *itemService) Delete(ctx context.Context, id string) *MutationResult {
	if err := s.repo.Delete(ctx, id); err != nil {
		logError("item_delete_failed", "item", err)
		return failed("Database Error: Failed to delete item.")
	}
	return succeeded([]string{ItemsRoute}, "")
}

func (s *itemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *itemService) List(ctx context.Context, search string, page int) (*ListPage[model.Item], error) {
	if page < 1 {
		page = 1
	}
	res, err := s.repo.List(ctx, repository.ListQuery{Search: search, Page: page})
	if err != nil {
		return nil, err
	}
	return &ListPage[model.Item]{
		Items:      res.Items,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}, nil
}
