package database

import (
	"errors"

	"github.com/credsink/credsink/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPostgresError translates driver errors into the sentinel errors the rest
// of the application understands. Anything that looks like the database being
// unreachable (connection failures, shutdown states) becomes
// models.ErrStoreUnavailable so that no driver detail crosses the service
// boundary.
func MapPostgresError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	if pgErr, ok := err.(*pgconn.PgError); ok {
		switch pgErr.Code {
		case "23502": // not_null_violation
			return models.ErrValidation
		case "57P01", "57P02", "57P03": // admin_shutdown, crash_shutdown, cannot_connect_now
			return models.ErrStoreUnavailable
		}
		return models.ErrStoreUnavailable
	}

	// Connection-level failures (dial errors, closed pool) have no PgError.
	return models.ErrStoreUnavailable
}
