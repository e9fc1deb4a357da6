package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dashboard/internal/model"
	"dashboard/internal/repository"
	"dashboard/internal/storage"
	"dashboard/internal/validation"
)

// CustomerService defines the use cases for customers, including the photo
// ingestion side path of the mutation pipeline.
type CustomerService interface {
	// Create validates the form, ingests the photo if one was supplied, and
	// inserts a new customer. Ingestion failure aborts before any DB write.
	Create(ctx context.Context, form map[string]string, photo *Upload) *MutationResult

	// Update validates the form and applies the photo change: a new upload
	// replaces the stored reference, Remove clears it to the empty string,
	// and neither leaves it untouched.
	Update(ctx context.Context, id string, form map[string]string, photo PhotoChange) *MutationResult

	// Delete removes the customer record. The stored photo asset is left in
	// place; no cleanup is attempted.
	Delete(ctx context.Context, id string) *MutationResult

	// Get returns a single customer for the edit form.
	Get(ctx context.Context, id string) (*model.Customer, error)

	// List returns a filtered, paginated customer page.
	List(ctx context.Context, search string, page int) (*ListPage[model.Customer], error)

	// All returns every customer for the invoice form's selector.
	All(ctx context.Context) ([]model.Customer, error)
}

type customerService struct {
	store storage.Storage
	repo  repository.CustomerRepository
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(store storage.Storage, repo repository.CustomerRepository) CustomerService {
	return &customerService{store: store, repo: repo}
}

func (s *customerService) Create(ctx context.Context, form map[string]string, photo *Upload) *MutationResult {
	in, fe := validation.ParseCustomerForm(form)
	if !fe.Empty() {
		return invalid(fe, "Missing or invalid fields. Failed to create customer.")
	}

	imageURL := ""
	if hasContent(photo) {
		url, err := s.ingest(ctx, photo)
		if err != nil {
			logError("customer_photo_ingest_failed", "customer", err)
			return failed("Image upload failed. Customer was not saved.")
		}
		imageURL = url
	}

	c := &model.Customer{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		ImageURL: imageURL,
	}
	if _, err := s.repo.Create(ctx, c); err != nil {
		logError("customer_create_failed", "customer", err)
		return failed("Database Error: Failed to create customer.")
	}

	return succeeded([]string{CustomersRoute}, CustomersRoute)
}

func (s *customerService) Update(ctx context.Context, id string, form map[string]string, photo PhotoChange) *MutationResult {
	in, fe := validation.ParseCustomerForm(form)
	if !fe.Empty() {
		return invalid(fe, "Missing or invalid fields. Failed to update customer.")
	}

	var err error
	switch {
	case hasContent(photo.Upload):
		var url string
		url, err = s.ingest(ctx, photo.Upload)
		if err != nil {
			logError("customer_photo_ingest_failed", "customer", err)
			return failed("Image upload failed. Customer was not saved.")
		}
		err = s.repo.UpdateWithImage(ctx, id, in.Name, in.Email, url)
	case photo.Remove:
		// Removal sentinel: clear the stored reference, skip ingestion.
		err = s.repo.UpdateWithImage(ctx, id, in.Name, in.Email, "")
	default:
		err = s.repo.Update(ctx, id, in.Name, in.Email)
	}
	if err != nil {
		logError("customer_update_failed", "customer", err)
		return failed("Database Error: Failed to update customer.")
	}

	return succeeded([]string{CustomersRoute}, CustomersRoute)
}

func (s *customerService) Delete(ctx context.Context, id string) *MutationResult {
	if err := s.repo.Delete(ctx, id); err != nil {
		logError("customer_delete_failed", "customer", err)
		return failed("Database Error: Failed to delete customer.")
	}
	return succeeded([]string{CustomersRoute}, "")
}

func (s *customerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, search string, page int) (*ListPage[model.Customer], error) {
	if page < 1 {
		page = 1
	}
	res, err := s.repo.List(ctx, repository.ListQuery{Search: search, Page: page})
	if err != nil {
		return nil, err
	}
	return &ListPage[model.Customer]{
		Items:      res.Items,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}, nil
}

func (s *customerService) All(ctx context.Context) ([]model.Customer, error) {
	return s.repo.All(ctx)
}

// ingest writes the uploaded photo to durable storage under a time-prefixed,
// collision-resistant key and returns the reference URL to store on the
// record. At most one storage write per mutation; failure aborts the caller.
func (s *customerService) ingest(ctx context.Context, photo *Upload) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(photo.Filename))
	key := "customers/" + name

	_, err := s.store.Put(ctx, key, photo.Reader, storage.PutObjectOptions{
		Size:        photo.Size,
		ContentType: photo.ContentType,
		Metadata: map[string]string{
			"original-filename": photo.Filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return "/" + key, nil
}

// hasContent reports whether an upload carries actual bytes. Zero-size
// uploads are treated as "no file".
func hasContent(photo *Upload) bool {
	return photo != nil && photo.Reader != nil && photo.Size > 0
}
