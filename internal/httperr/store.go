package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the intake flow maps to friendlier wording.
const (
	pgInsufficientPrivilege = "42501"
	pgInvalidDatetimeFormat = "22007"
)

// StoreMessage converts a store write error into user-facing text. Two codes
// get dedicated copy; everything else passes the raw message through.
func StoreMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInsufficientPrivilege:
			return "Unable to create reservation. Please try again later."
		case pgInvalidDatetimeFormat:
			return "Please select a valid time for your reservation."
		default:
			return pgErr.Message
		}
	}
	return err.Error()
}

// IsPermissionDenied reports whether the store rejected the write for lack of
// privileges.
func IsPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInsufficientPrivilege
}
