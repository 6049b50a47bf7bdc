package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/draftpilot/draftpilot-api/internal/store"
)

// PostgreSQL error codes.
const (
	// uniqueViolationCode is the error code for unique constraint violations.
	uniqueViolationCode = "23505"

	// checkViolationCode is the error code for check constraint violations.
	checkViolationCode = "23514"

	// notNullViolationCode is the error code for not null violations.
	notNullViolationCode = "23502"
)

// MapError maps a database error to the matching store error, wrapping the
// original for context. Every database operation routes its errors through
// here so callers can branch on store sentinels.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case checkViolationCode:
			return fmt.Errorf("%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case notNullViolationCode:
			return fmt.Errorf("%w: not null violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ColumnName, err)
		}
	}

	return err
}
