package handler

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"dashboard/internal/repository"
	"dashboard/internal/service"
	"dashboard/internal/view"
)

func (h *Handlers) customerIndex(c *fiber.Ctx) error {
	return h.listing(c, service.CustomersRoute, "customers/index", func() (fiber.Map, error) {
		page := pageParam(c)
		search := c.Query("query")

		res, err := h.Customers.List(c.UserContext(), search, page)
		if err != nil {
			return nil, err
		}

		return fiber.Map{
			"Title":      "Customers",
			"Route":      service.CustomersRoute,
			"Query":      search,
			"Page":       page,
			"TotalPages": res.TotalPages,
			"Pages":      view.Pagination(page, res.TotalPages),
			"Customers":  res.Items,
		}, nil
	})
}

func (h *Handlers) customerCreateForm(c *fiber.Ctx) error {
	return c.Render("customers/create", fiber.Map{
		"Title":  "Create Customer",
		"Action": service.CustomersRoute,
		"Values": map[string]string{},
	}, "layouts/main")
}

func (h *Handlers) customerCreate(c *fiber.Ctx) error {
	form := formValues(c)

	photo, closeFn, err := photoUpload(c)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn()
	}

	res := h.Customers.Create(c.UserContext(), form, photo)
	if res.OK() {
		h.Cache.Invalidate(res.Stale...)
		return c.Redirect(res.Redirect, fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("customers/create", fiber.Map{
		"Title":   "Create Customer",
		"Action":  service.CustomersRoute,
		"Values":  form,
		"Errors":  res.Errors,
		"Message": res.Message,
	}, "layouts/main")
}

func (h *Handlers) customerEditForm(c *fiber.Ctx) error {
	id := c.Params("id")

	cust, err := h.Customers.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return c.Render("customers/edit", fiber.Map{
		"Title":  "Edit Customer",
		"Action": service.CustomersRoute + "/" + id,
		"Values": map[string]string{
			"name":  cust.Name,
			"email": cust.Email,
		},
		"ImageURL":   cust.ImageURL,
		"ShowRemove": cust.ImageURL != "",
	}, "layouts/main")
}

func (h *Handlers) customerUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	form := formValues(c)

	photo, closeFn, err := photoUpload(c)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn()
	}

	change := service.PhotoChange{
		Upload: photo,
		Remove: form["remove_photo"] == "on" || form["remove_photo"] == "true",
	}

	res := h.Customers.Update(c.UserContext(), id, form, change)
	if res.OK() {
		h.Cache.Invalidate(res.Stale...)
		return c.Redirect(res.Redirect, fiber.StatusSeeOther)
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("customers/edit", fiber.Map{
		"Title":   "Edit Customer",
		"Action":  service.CustomersRoute + "/" + id,
		"Values":  form,
		"Errors":  res.Errors,
		"Message": res.Message,
	}, "layouts/main")
}

func (h *Handlers) customerDelete(c *fiber.Ctx) error {
	res := h.Customers.Delete(c.UserContext(), c.Params("id"))
	h.Cache.Invalidate(res.Stale...)
	return c.Redirect(service.CustomersRoute, fiber.StatusSeeOther)
}

// customerPhoto streams a stored customer image back out of the asset store.
// Stored image references are app-relative (/customers/<name>) so this route
// serves both the local and the S3-backed backend.
func (h *Handlers) customerPhoto(c *fiber.Ctx) error {
	rc, info, err := h.Store.Get(c.UserContext(), "customers/"+c.Params("file"))
	if err != nil {
		return fiber.ErrNotFound
	}

	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	if info.Size > 0 {
		return c.SendStream(rc, int(info.Size))
	}
	return c.SendStream(rc)
}

// photoUpload extracts the optional photo file from a multipart form. A
// missing or zero-size part means no upload. The returned close function, if
// non-nil, releases the part's reader and must be deferred by the caller.
func photoUpload(c *fiber.Ctx) (*service.Upload, func(), error) {
	fh, err := c.FormFile("photo")
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}

	return &service.Upload{
		Filename:    fh.Filename,
		ContentType: contentTypeOf(fh),
		Size:        fh.Size,
		Reader:      f,
	}, func() { f.Close() }, nil
}

func contentTypeOf(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
