package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dashboard/internal/repository"
	"dashboard/internal/service"
	"dashboard/internal/view"
)

func (h *Handlers) itemIndex(c *fiber.Ctx) error {
	return h.listing(c, service.ItemsRoute, "items/index", func() (fiber.Map, error) {
		page := pageParam(c)
		search := c.Query("query")

		res, err := h.Items.List(c.UserContext(), search, page)
		if err != nil {
			return nil, err
		}

		return fiber.Map{
			"Title":      "Items",
			"Route":      service.ItemsRoute,
			"Query":      search,
			"Page":       page,
			"TotalPages": res.TotalPages,
			"Pages":      view.Pagination(page, res.TotalPages),
			"Items":      res.Items,
		}, nil
	})
}

func (h *Handlers) itemCreateForm(c *fiber.Ctx) error {
	return c.Render("items/create", fiber.Map{
		"Title":  "Create Item",
		"Action": service.ItemsRoute,
		"Values": map[string]string{},
	}, "layouts/main")
}

func (h *Handlers) itemCreate(c *fiber.Ctx) error {
	form := formValues(c)

	res := h.Items.Create(c.UserContext(), form)
	if res.OK() {
		h.Cache.Invalidate(res.Stale...)
		return c.Redirect(res.Redirect, fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("items/create", fiber.Map{
		"Title":   "Create Item",
		"Action":  service.ItemsRoute,
		"Values":  form,
		"Errors":  res.Errors,
		"Message": res.Message,
	}, "layouts/main")
}

func (h *Handlers) itemEditForm(c *fiber.Ctx) error {
	id := c.Params("id")

	item, err := h.Items.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return c.Render("items/edit", fiber.Map{
		"Title":  "Edit Item",
		"Action": service.ItemsRoute + "/" + id,
		"Values": map[string]string{
			"name":        item.Name,
			"description": item.Description,
			"price":       strconv.FormatFloat(item.Price, 'f', 2, 64),
			"unit":        item.Unit,
		},
	}, "layouts/main")
}

func (h *Handlers) itemUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	form := formValues(c)

	res := h.Items.Update(c.UserContext(), id, form)
	if res.OK() {
		h.Cache.Invalidate(res.Stale...)
		return c.Redirect(res.Redirect, fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("items/edit", fiber.Map{
		"Title":   "Edit Item",
		"Action":  service.ItemsRoute + "/" + id,
		"Values":  form,
		"Errors":  res.Errors,
		"Message": res.Message,
	}, "layouts/main")
}

func (h *Handlers) itemDelete(c *fiber.Ctx) error {
	res := h.Items.Delete(c.UserContext(), c.Params("id"))
	h.Cache.Invalidate(res.Stale...)
	return c.Redirect(service.ItemsRoute, fiber.StatusSeeOther)
}
