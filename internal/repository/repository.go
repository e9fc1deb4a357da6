package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// PageSize is the fixed number of rows per listing page.
const PageSize = 6

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable wraps any backend failure. Implementations never leak
	// raw driver errors past this sentinel; callers log the full chain and
	// show a generic message.
	ErrUnavailable = errors.New("storage unavailable")
)

// ListQuery holds the free-text search string and 1-based page number for
// filtered listings.
type ListQuery struct {
	Search string
	Page   int
}

// Offset converts the 1-based page number to a row offset.
func (q ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items      []T
	Total      int
	TotalPages int
}

// PageCount returns ceil(total / PageSize).
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}
