package handler

import (
	"bytes"
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"dashboard/internal/service"
	"dashboard/internal/storage"
	"dashboard/internal/view"
)

// Handlers bundles the dependencies the HTTP layer needs. Services and
// storage are injected as interfaces so tests can swap in mocks.
type Handlers struct {
	DB     *sql.DB
	Loc    *time.Location
	DBHost string

	Invoices  service.InvoiceService
	Customers service.CustomerService
	Items     service.ItemService

	Store storage.Storage
	Cache *view.Cache
	Views fiber.Views
}

// listing serves a cached listing page when one exists, otherwise renders
// through bind, stores the result, and sends it. The cache key is the
// canonical route plus the raw query string, so distinct search/page
// combinations cache independently.
func (h *Handlers) listing(c *fiber.Ctx, route, name string, bind func() (fiber.Map, error)) error {
	query := string(c.Request().URI().QueryString())

	if page, ok := h.Cache.Get(route, query); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(page)
	}

	data, err := bind()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.Views.Render(&buf, name, data, "layouts/main"); err != nil {
		return err
	}

	h.Cache.Put(route, query, buf.Bytes())
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// formValues flattens the submitted form into the map the mutation pipelines
// consume. Multipart bodies (customer forms) and urlencoded bodies are both
// supported; repeated fields keep their first value.
func formValues(c *fiber.Ctx) map[string]string {
	form := map[string]string{}

	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		for k, v := range mf.Value {
			if len(v) > 0 {
				form[k] = v[0]
			}
		}
		return form
	}

	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		if _, seen := form[string(k)]; !seen {
			form[string(k)] = string(v)
		}
	})
	return form
}

// pageParam reads the requested listing page, defaulting to 1.
func pageParam(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
