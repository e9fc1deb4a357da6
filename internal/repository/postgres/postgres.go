package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"dashboard/internal/repository"
)

// wrapErr translates driver errors into the repository sentinels. The raw
// error text stays inside the chain for logging; callers surface only the
// sentinel to end users.
func wrapErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
}

// likePattern wraps the search string for a case-insensitive substring match.
func likePattern(search string) string {
	return "%" + search + "%"
}
