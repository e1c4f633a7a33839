package errors

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// standard error codes
const (
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeNotFound         = "not_found"
	CodeValidationError  = "validation_error"
	CodeServerError      = "server_error"
	CodeBadRequest       = "bad_request"
	CodeConflict         = "conflict"
	CodeLimitReached     = "limit_reached"
	CodeTooManyRequests  = "too_many_requests"
	CodeStoreUnavailable = "store_unavailable"
)

// postgres unique_violation, used to treat duplicate provisioning as success
const PgUniqueViolation = "23505"

// reports whether err is a postgres unique constraint violation
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == PgUniqueViolation
	}

	return false
}

// sanitizes error messages for production responses
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	env := os.Getenv("ENVIRONMENT")
	if env != "production" {
		return err.Error()
	}

	// database errors (pgx-specific)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "database operation failed"
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return "resource not found"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline"):
		return "request timed out"
	case strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no rows"):
		return "resource not found"
	case strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") ||
		strings.Contains(errMsg, "postgres") || strings.Contains(errMsg, "pgx"):
		return "database operation failed"
	case strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial"):
		return "connection error occurred"
	case strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "permission"):
		return "permission denied"
	}

	return "an error occurred"
}
