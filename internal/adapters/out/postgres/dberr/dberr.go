// Package dberr maps driver failures to the domain error taxonomy. Connectivity
// failures become errs.StoreUnavailableError so callers can retry; everything else is
// wrapped with the failing operation.
package dberr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"foodorders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes and codes that are worth retrying.
const (
	classConnectionException = "08"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Wrap classifies err as produced by op. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) {
		return errs.NewStoreUnavailableError(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// IsUnavailable reports whether err means the store could not serve the request.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnectionException {
			return true
		}
		switch pgErr.Code {
		case codeAdminShutdown, codeCannotConnectNow, codeSerializationFailure, codeDeadlockDetected:
			return true
		}
		return false
	}

	return pgconn.SafeToRetry(err) ||
		pgconn.Timeout(err) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
