package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can map it to a status code
// without inspecting error strings.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized" // missing or rejected credential
	KindBadRequest   Kind = "bad_request"  // missing required input
	KindNotFound     Kind = "not_found"    // remote resource absent
	KindProvider     Kind = "provider"     // any other failure from the YouTube API
	KindSink         Kind = "sink"         // audit append failure; never fatal to the primary operation
)

// AppError carries a Kind alongside the underlying cause. The provider's
// message is preserved verbatim so it can be passed through to the client.
type AppError struct {
	Kind    Kind
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

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Provider(message string, err error) *AppError {
	return &AppError{Kind: KindProvider, Message: message, Err: err}
}

func Sink(message string, err error) *AppError {
	return &AppError{Kind: KindSink, Message: message, Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindProvider for anything
// that did not come through the taxonomy.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindProvider
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
