package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dashboard/internal/model"
	"dashboard/internal/repository"
	repoMocks "dashboard/internal/repository/mocks"
)

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("one insert with parsed price, then redirect", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(it *model.Item) bool {
			return it.ID != "" &&
				it.Name == "Widget" &&
				it.Price == 12.50 &&
				it.Unit == "box" &&
				!it.CreatedAt.IsZero() &&
				it.CreatedAt.Equal(it.UpdatedAt)
		})).Return(&model.Item{ID: "gen-id"}, nil).Once()

		svc := NewItemService(mRepo)
		res := svc.Create(ctx, map[string]string{"name": "Widget", "price": "12.50", "unit": "box"})

		assert.True(t, res.OK())
		assert.Equal(t, ItemsRoute, res.Redirect)
		assert.Equal(t, []string{ItemsRoute}, res.Stale)
		mRepo.AssertExpectations(t)
	})

	t.Run("zero price fails validation with no insert", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)

		svc := NewItemService(mRepo)
		res := svc.Create(ctx, map[string]string{"name": "Widget", "price": "0", "unit": "box"})

		assert.Equal(t, []string{"Price must be greater than 0."}, res.Errors["price"])
		assert.Empty(t, res.Redirect)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("storage failure downgraded", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrUnavailable)

		svc := NewItemService(mRepo)
		res := svc.Create(ctx, map[string]string{"name": "Widget", "price": "1"})

		assert.Equal(t, "Database Error: Failed to create item.", res.Message)
		assert.Empty(t, res.Errors)
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes updated_at and keeps created_at untouched", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)
		mRepo.On("Update", ctx, mock.MatchedBy(func(it *model.Item) bool {
			return it.ID == "item-1" &&
				it.Price == 9.99 &&
				!it.UpdatedAt.IsZero() &&
				it.CreatedAt.IsZero()
		})).Return(nil)

		svc := NewItemService(mRepo)
		res := svc.Update(ctx, "item-1", map[string]string{"name": "Widget", "price": "9.99"})

		assert.True(t, res.OK())
		mRepo.AssertExpectations(t)
	})

	t.Run("validation failure skips repository", func(t *testing.T) {
		mRepo := new(repoMocks.MockItemRepository)

		svc := NewItemService(mRepo)
		res := svc.Update(ctx, "item-1", map[string]string{"name": "", "price": "not-a-number"})

		assert.NotEmpty(t, res.Errors["name"])
		assert.NotEmpty(t, res.Errors["price"])
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockItemRepository)
	mRepo.On("Delete", ctx, "item-1").Return(nil)

	svc := NewItemService(mRepo)
	res := svc.Delete(ctx, "item-1")

	assert.True(t, res.OK())
	assert.Equal(t, []string{ItemsRoute}, res.Stale)
	assert.Empty(t, res.Redirect)
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockItemRepository)
	mRepo.On("List", ctx, repository.ListQuery{Search: "wid", Page: 2}).
		Return(&repository.PageResult[model.Item]{
			Items:      []model.Item{{Name: "Widget"}},
			Total:      7,
			TotalPages: 2,
		}, nil)

	svc := NewItemService(mRepo)
	page, err := svc.List(ctx, "wid", 2)

	assert.NoError(t, err)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}
