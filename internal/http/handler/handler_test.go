package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dashboard/internal/model"
	"dashboard/internal/repository"
	"dashboard/internal/service"
	serviceMocks "dashboard/internal/service/mocks"
	"dashboard/internal/storage"
	storageMocks "dashboard/internal/storage/mocks"
	"dashboard/internal/view"
)

type testDeps struct {
	invoices  *serviceMocks.MockInvoiceService
	customers *serviceMocks.MockCustomerService
	items     *serviceMocks.MockItemService
	store     *storageMocks.MockStorage
	cache     *view.Cache
	db        sqlmock.Sqlmock
}

func newTestApp(t *testing.T) (*fiber.App, *testDeps) {
	t.Helper()

	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, err := view.NewCache(16)
	require.NoError(t, err)

	deps := &testDeps{
		invoices:  new(serviceMocks.MockInvoiceService),
		customers: new(serviceMocks.MockCustomerService),
		items:     new(serviceMocks.MockItemService),
		store:     new(storageMocks.MockStorage),
		cache:     cache,
		db:        dbMock,
	}

	engine := NewEngine()
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, &Handlers{
		DB:        db,
		Loc:       time.UTC,
		DBHost:    "localhost",
		Invoices:  deps.invoices,
		Customers: deps.customers,
		Items:     deps.items,
		Store:     deps.store,
		Cache:     cache,
		Views:     engine,
	})

	return app, deps
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func postForm(app *fiber.App, path string, values url.Values) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return app.Test(req)
}

func TestHealth(t *testing.T) {
	app, deps := newTestApp(t)

	t.Run("healthy", func(t *testing.T) {
		deps.db.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		deps.db.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInvoiceIndex(t *testing.T) {
	app, deps := newTestApp(t)

	page := &service.ListPage[model.InvoiceWithCustomer]{
		Items: []model.InvoiceWithCustomer{
			{
				Invoice: model.Invoice{
					ID:          "inv-1",
					CustomerID:  "cust-1",
					AmountCents: 1250,
					Status:      model.InvoiceStatusPaid,
					Date:        time.Date(2023, 6, 17, 0, 0, 0, 0, time.UTC),
				},
				CustomerName:  "Amy Burns",
				CustomerEmail: "amy@burns.com",
			},
		},
		Total:      1,
		TotalPages: 1,
	}

	// Once: the second request must come out of the view cache.
	deps.invoices.On("List", mock.Anything, "amy", 1).Return(page, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=amy&page=1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "Amy Burns")
	assert.Contains(t, body, "$12.50")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=amy&page=1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Amy Burns")

	deps.invoices.AssertExpectations(t)
}

func TestInvoiceCreate(t *testing.T) {
	t.Run("success redirects and invalidates the listing", func(t *testing.T) {
		app, deps := newTestApp(t)

		deps.cache.Put(service.InvoicesRoute, "query=&page=1", []byte("<stale>"))

		deps.invoices.On("Create", mock.Anything, map[string]string{
			"customer_id": "cust-1",
			"amount":      "12.50",
			"status":      "paid",
		}).Return(&service.MutationResult{
			Stale:    []string{service.InvoicesRoute},
			Redirect: service.InvoicesRoute,
		}).Once()

		resp, err := postForm(app, "/dashboard/invoices", url.Values{
			"customer_id": {"cust-1"},
			"amount":      {"12.50"},
			"status":      {"paid"},
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, service.InvoicesRoute, resp.Header.Get("Location"))

		_, cached := deps.cache.Get(service.InvoicesRoute, "query=&page=1")
		assert.False(t, cached)

		deps.invoices.AssertExpectations(t)
	})

	t.Run("validation failure re-renders the form", func(t *testing.T) {
		app, deps := newTestApp(t)

		deps.invoices.On("Create", mock.Anything, mock.Anything).Return(&service.MutationResult{
			Errors:  map[string][]string{"amount": {"Please enter an amount greater than $0."}},
			Message: "Missing fields. Failed to create invoice.",
		}).Once()
		deps.customers.On("All", mock.Anything).Return([]model.Customer{{ID: "cust-1", Name: "Amy Burns"}}, nil).Once()

		resp, err := postForm(app, "/dashboard/invoices", url.Values{"amount": {"0"}})
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := readBody(t, resp)
		assert.Contains(t, body, "Please enter an amount greater than $0.")
		assert.Contains(t, body, "Missing fields. Failed to create invoice.")
	})
}

func TestInvoiceDelete(t *testing.T) {
	app, deps := newTestApp(t)

	deps.cache.Put(service.InvoicesRoute, "query=&page=2", []byte("<stale>"))

	deps.invoices.On("Delete", mock.Anything, "inv-1").Return(&service.MutationResult{
		Stale: []string{service.InvoicesRoute},
	}).Once()

	resp, err := postForm(app, "/dashboard/invoices/inv-1/delete", url.Values{})
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, service.InvoicesRoute, resp.Header.Get("Location"))
	assert.Equal(t, 0, deps.cache.Len())

	deps.invoices.AssertExpectations(t)
}

func TestInvoiceEditFormNotFound(t *testing.T) {
	app, deps := newTestApp(t)

	deps.invoices.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/invoices/missing/edit", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomerCreateWithPhoto(t *testing.T) {
	app, deps := newTestApp(t)

	deps.customers.On("Create", mock.Anything, mock.MatchedBy(func(form map[string]string) bool {
		return form["name"] == "Lee Robinson" && form["email"] == "lee@robinson.com"
	}), mock.MatchedBy(func(photo *service.Upload) bool {
		return photo != nil && photo.Filename == "lee.png" && photo.Size > 0
	})).Return(&service.MutationResult{
		Stale:    []string{service.CustomersRoute},
		Redirect: service.CustomersRoute,
	}).Once()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("name", "Lee Robinson")
	w.WriteField("email", "lee@robinson.com")
	part, err := w.CreateFormFile("photo", "lee.png")
	require.NoError(t, err)
	part.Write([]byte("png-bytes"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/customers", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, service.CustomersRoute, resp.Header.Get("Location"))

	deps.customers.AssertExpectations(t)
}

func TestCustomerUpdateRemovePhoto(t *testing.T) {
	app, deps := newTestApp(t)

	deps.customers.On("Update", mock.Anything, "cust-1", mock.Anything, mock.MatchedBy(func(change service.PhotoChange) bool {
		return change.Upload == nil && change.Remove
	})).Return(&service.MutationResult{
		Stale:    []string{service.CustomersRoute},
		Redirect: service.CustomersRoute,
	}).Once()

	resp, err := postForm(app, "/dashboard/customers/cust-1", url.Values{
		"name":         {"Lee Robinson"},
		"email":        {"lee@robinson.com"},
		"remove_photo": {"on"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	deps.customers.AssertExpectations(t)
}

func TestCustomerPhoto(t *testing.T) {
	app, deps := newTestApp(t)

	t.Run("found", func(t *testing.T) {
		deps.store.On("Get", mock.Anything, "customers/lee.png").Return(
			io.NopCloser(strings.NewReader("png-bytes")),
			storage.ObjectInfo{Key: "customers/lee.png", Size: 9, ContentType: "image/png"},
			nil,
		).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/customers/lee.png", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(t, "png-bytes", readBody(t, resp))
	})

	t.Run("missing", func(t *testing.T) {
		deps.store.On("Get", mock.Anything, "customers/nope.png").Return(
			nil, storage.ObjectInfo{}, errors.New("object not found"),
		).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/customers/nope.png", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestItemUpdate(t *testing.T) {
	t.Run("validation failure re-renders the edit form", func(t *testing.T) {
		app, deps := newTestApp(t)

		deps.items.On("Update", mock.Anything, "item-1", mock.Anything).Return(&service.MutationResult{
			Errors:  map[string][]string{"price": {"Price must be greater than 0."}},
			Message: "Missing fields. Failed to update item.",
		}).Once()

		resp, err := postForm(app, "/dashboard/items/item-1", url.Values{
			"name":  {"Widget"},
			"price": {"0"},
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Price must be greater than 0.")
	})

	t.Run("success redirects to the listing", func(t *testing.T) {
		app, deps := newTestApp(t)

		deps.items.On("Update", mock.Anything, "item-1", mock.Anything).Return(&service.MutationResult{
			Stale:    []string{service.ItemsRoute},
			Redirect: service.ItemsRoute,
		}).Once()

		resp, err := postForm(app, "/dashboard/items/item-1", url.Values{
			"name":  {"Widget"},
			"price": {"12.50"},
			"unit":  {"box"},
		})
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, service.ItemsRoute, resp.Header.Get("Location"))
	})
}

func TestItemIndexListError(t *testing.T) {
	app, deps := newTestApp(t)

	deps.items.On("List", mock.Anything, "", 1).Return(nil, errors.New("connection refused")).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard/items", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSeedSkipsWhenSchemaExists(t *testing.T) {
	app, deps := newTestApp(t)

	deps.db.ExpectQuery("SELECT to_regclass").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/seed", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "seeded", body["status"])

	require.NoError(t, deps.db.ExpectationsWereMet())
}
