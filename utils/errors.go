package utils

import (
	"errors"
	"fmt"
	"net/http"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrorKind classifies a service failure so controllers can map it to an
// HTTP status without string matching.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindAccessDenied
	KindConflict
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(entity string) *AppError {
	return &AppError{Kind: KindNotFound, Message: entity + " not found"}
}

func AccessDeniedError(message string) *AppError {
	return &AppError{Kind: KindAccessDenied, Message: message}
}

func ConflictError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func InternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", Err: err}
}

// WrapDBError normalizes store-layer failures: record-not-found becomes a
// NotFound for the named entity, a MySQL 1062 duplicate-key violation becomes
// a Conflict, anything else is internal.
func WrapDBError(err error, entity string) *AppError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError(entity)
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return ConflictError("duplicate %s", entity)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ConflictError("duplicate %s", entity)
	}
	return InternalError(err)
}

// HTTPStatus maps an error to the status code the API contract promises.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAccessDenied:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show a client. Internal errors
// keep their detail server-side.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "internal server error"
}
