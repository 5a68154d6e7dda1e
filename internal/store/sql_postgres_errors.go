package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification indicates whether a failed database operation hit a
// connectivity problem (the store itself is unreachable) or a data-level
// error local to the statement.
type ErrorClassification int

const (
	// DataError is the default classification for unrecognised errors,
	// constraint violations, syntax errors, and data exceptions.
	DataError ErrorClassification = iota

	// ConnectivityError indicates the database could not be reached or the
	// connection was lost mid-operation. The repository reports these as
	// [ErrStoreUnavailable] so the transport can answer 503 rather than
	// blaming the credentials.
	ConnectivityError
)

// Classify inspects the pgconn error code returned by the pgx driver and
// maps it to an [ErrorClassification] value. A nil error or a non-PostgreSQL
// error is classified as [DataError].
func Classify(err error) ErrorClassification {
	if err == nil {
		return DataError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return DataError
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Connectivity codes:
//   - Class 08 - connection exceptions (08000, 08003, 08006)
//   - Class 57 - cannot connect now (57P03)
//
// Everything else (data exceptions, constraint violations, syntax errors)
// is classified as [DataError].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 - connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return ConnectivityError

	// Class 57 - operator intervention
	case pgerrcode.CannotConnectNow:
		return ConnectivityError
	}

	return DataError
}
