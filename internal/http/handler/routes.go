package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dashboard/internal/database/migration"
	"dashboard/internal/service"
)

// RegisterRoutes attaches the dashboard routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, h *Handlers) {
	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Bootstrap boundary: creates the schema and fixture rows when missing
	app.Post("/seed", func(c *fiber.Ctx) error {
		if err := migration.EnsureMigrated(c.UserContext(), h.DB, h.Loc, h.DBHost); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "failed"})
		}
		return c.JSON(fiber.Map{"status": "seeded"})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(service.InvoicesRoute, fiber.StatusSeeOther)
	})

	app.Get("/customers/:file", h.customerPhoto)

	invoices := app.Group(service.InvoicesRoute)
	invoices.Get("/", h.invoiceIndex)
	invoices.Get("/create", h.invoiceCreateForm)
	invoices.Post("/", h.invoiceCreate)
	invoices.Get("/:id/edit", h.invoiceEditForm)
	invoices.Post("/:id", h.invoiceUpdate)
	invoices.Post("/:id/delete", h.invoiceDelete)

	customers := app.Group(service.CustomersRoute)
	customers.Get("/", h.customerIndex)
	customers.Get("/create", h.customerCreateForm)
	customers.Post("/", h.customerCreate)
	customers.Get("/:id/edit", h.customerEditForm)
	customers.Post("/:id", h.customerUpdate)
	customers.Post("/:id/delete", h.customerDelete)

	items := app.Group(service.ItemsRoute)
	items.Get("/", h.itemIndex)
	items.Get("/create", h.itemCreateForm)
	items.Post("/", h.itemCreate)
	items.Get("/:id/edit", h.itemEditForm)
	items.Post("/:id", h.itemUpdate)
	items.Post("/:id/delete", h.itemDelete)
}
