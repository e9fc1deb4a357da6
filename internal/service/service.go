package service

import (
	"encoding/json"
	"io"
	"log"
	"time"
)

// Package service hosts the mutation pipelines: validate -> (optional photo
// ingestion) -> persist -> report stale routes -> redirect target. Validation,
// ingestion, and storage failures are turned into structured MutationResult
// values here; they never terminate the request abnormally.

// Canonical listing routes. A successful mutation marks its listing route
// stale and redirects to it.
const (
	InvoicesRoute  = "/dashboard/invoices"
	CustomersRoute = "/dashboard/customers"
	ItemsRoute     = "/dashboard/items"
)

// MutationResult is the outcome of one mutation pipeline run.
//
// Errors non-empty means validation failed: Message carries the summary and
// nothing was persisted. Errors empty with a non-empty Message means ingestion
// or persistence failed. Otherwise the mutation succeeded: Stale lists the
// routes whose cached renderings must be invalidated and Redirect is the
// canonical listing route (empty for deletes, which re-render in place).
type MutationResult struct {
	Errors   map[string][]string
	Message  string
	Stale    []string
	Redirect string
}

// OK reports whether the mutation reached the persistence step and succeeded.
func (r *MutationResult) OK() bool {
	return len(r.Errors) == 0 && r.Message == ""
}

// Upload is an uploaded binary from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// PhotoChange describes what an update does to the stored customer image.
// A nil/zero-size Upload with Remove false leaves the reference untouched.
type PhotoChange struct {
	Upload *Upload
	Remove bool
}

// ListPage is the service-level DTO for paginated listings. It keeps
// repository types out of handler signatures.
type ListPage[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

func invalid(errors map[string][]string, message string) *MutationResult {
	return &MutationResult{Errors: errors, Message: message}
}

func failed(message string) *MutationResult {
	return &MutationResult{Message: message}
}

func succeeded(stale []string, redirect string) *MutationResult {
	return &MutationResult{Stale: stale, Redirect: redirect}
}

// logError emits one JSON log line with the raw error. Raw backend
// diagnostics are logged here and never shown to the end user.
func logError(event, entity string, err error) {
	entry := map[string]any{
		"ts":     time.Now().UTC().Format(time.RFC3339Nano),
		"level":  "error",
		"event":  event,
		"entity": entity,
		"error":  err.Error(),
	}
	if b, mErr := json.Marshal(entry); mErr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
