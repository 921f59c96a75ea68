package apperror

import (
	"fmt"
	"net/http"
)

// Kind classifies an AppError beyond its HTTP status code, so callers and
// logs can distinguish e.g. a missing header from a malformed one.
type Kind string

const (
	KindMissingHeader   Kind = "missing_header"
	KindMalformedHeader Kind = "malformed_header"
	KindForbidden       Kind = "forbidden"
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindIntegrity       Kind = "integrity_violation"
	KindUpstream        Kind = "upstream_failure"
	KindStorage         Kind = "storage_failure"
	KindBadRequest      Kind = "bad_request"
	KindInternal        Kind = "internal"
)

type AppError struct {
	Code    int         `json:"code"`
	Kind    Kind        `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func MissingHeader(name string) *AppError {
	return New(http.StatusBadRequest, KindMissingHeader, fmt.Sprintf("`%s` header is missing", name), nil)
}

func MalformedHeader(name string) *AppError {
	return New(http.StatusBadRequest, KindMalformedHeader, fmt.Sprintf("`%s` header is malformed", name), nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

// Validation carries the aggregated list of violations in Details.
func Validation(details interface{}) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: "Validation failed",
		Details: details,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// Integrity signals a server-side invariant breach, e.g. a unique key that
// matched more than one row.
func Integrity(message string) *AppError {
	return New(http.StatusInternalServerError, KindIntegrity, message, nil)
}

func Upstream(message string, err error) *AppError {
	return New(http.StatusBadGateway, KindUpstream, message, err)
}

func Storage(err error) *AppError {
	return New(http.StatusInternalServerError, KindStorage, "Storage operation failed", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}

// IsKind reports whether err is an *AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Kind == kind
}
