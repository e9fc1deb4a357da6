package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dashboard/internal/repository"
	"dashboard/internal/service"
	"dashboard/internal/view"
)

func (h *Handlers) invoiceIndex(c *fiber.Ctx) error {
	return h.listing(c, service.InvoicesRoute, "invoices/index", func() (fiber.Map, error) {
		page := pageParam(c)
		search := c.Query("query")

		res, err := h.Invoices.List(c.UserContext(), search, page)
		if err != nil {
			return nil, err
		}

		return fiber.Map{
			"Title":      "Invoices",
			"Route":      service.InvoicesRoute,
			"Query":      search,
			"Page":       page,
			"TotalPages": res.TotalPages,
			"Pages":      view.Pagination(page, res.TotalPages),
			"Invoices":   res.Items,
		}, nil
	})
}

func (h *Handlers) invoiceCreateForm(c *fiber.Ctx) error {
	customers, err := h.Customers.All(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("invoices/create", fiber.Map{
		"Title":     "Create Invoice",
		"Action":    service.InvoicesRoute,
		"Customers": customers,
		"Values":    map[string]string{},
	}, "layouts/main")
}

func (h *Handlers) invoiceCreate(c *fiber.Ctx) error {
	form := formValues(c)
	res := h.Invoices.Create(c.UserContext(), form)
	if res.OK() {
		h.Cache.Invalidate(res.Stale...)
		return c.Redirect(res.Redirect, fiber.StatusSeeOther)
	}

	customers, err := h.Customers.All(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusUnprocessableEntity).Render("invoices/create", fiber.Map{
		"Title":     "Create Invoice",
		"Action":    service.InvoicesRoute,
		"Customers": customers,
		"Values":    form,
		"Errors":    res.Errors,
		"Message":   res.Message,
	}, "layouts/main")
}

func (h *Handlers) invoiceEditForm(c *fiber.Ctx) error {
	id := c.Params("id")

	inv, err := h.Invoices.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	customers, err := h.Customers.All(c.UserContext())
	if err != nil {
		return err
	}

	return c.Render("invoices/edit", fiber.Map{
		"Title":     "Edit Invoice",
		"Action":    service.InvoicesRoute + "/" + id,
		"Customers": customers,
		"Values": map[string]string{
			"customer_id": inv.CustomerID,
			"amount":      strconv.FormatFloat(float64(inv.AmountCents)/100, 'f', 2, 64),
			"status":      inv.Status,
		},
	}, "layouts/main")
}

func (h *Handlers) invoiceUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	form := formValues(c)

	res := h.Invoices.Update(c.UserContext(), id, form)
	if res.OK() {
		h.Cache.Invalidate(res.Stale...)
		return c.Redirect(res.Redirect, fiber.StatusSeeOther)
	}

	customers, err := h.Customers.All(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusUnprocessableEntity).Render("invoices/edit", fiber.Map{
		"Title":     "Edit Invoice",
		"Action":    service.InvoicesRoute + "/" + id,
		"Customers": customers,
		"Values":    form,
		"Errors":    res.Errors,
		"Message":   res.Message,
	}, "layouts/main")
}

func (h *Handlers) invoiceDelete(c *fiber.Ctx) error {
	res := h.Invoices.Delete(c.UserContext(), c.Params("id"))
	h.Cache.Invalidate(res.Stale...)
	return c.Redirect(service.InvoicesRoute, fiber.StatusSeeOther)
}
