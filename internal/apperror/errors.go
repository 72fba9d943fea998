// Package apperror defines the typed failures every service returns and the
// transport status each of them maps to.
package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failure independently of the transport.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindUnauthenticated   Kind = "unauthenticated"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
	KindCapacity          Kind = "capacity"
	KindSelfRating        Kind = "self_rating"
	KindMatchNotCompleted Kind = "match_not_completed"
	KindNotParticipant    Kind = "not_participant"
	KindDuplicate         Kind = "duplicate"
	KindEmptyRoster       Kind = "empty_roster"
	KindTimeout           Kind = "timeout"
	KindUnavailable       Kind = "unavailable"
	KindInternal          Kind = "internal"
)

// Error is the single error type crossing the service boundary.
type Error struct {
	Kind       Kind
	Message    string
	Violations []string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Violations) > 0 {
		msg = msg + ": " + strings.Join(e.Violations, ", ")
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a typed error. The cause is logged, never shown to callers.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation reports every violated rule at once.
func Validation(violations ...string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Violations: violations}
}

func NotFound(resource string) *Error {
	return New(KindNotFound, resource+" not found")
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Internal hides the cause behind a generic message.
func Internal(err error) *Error {
	return Wrap(KindInternal, "Internal server error", err)
}

// KindOf resolves the kind of any error. Deadline and cancellation errors that
// were never wrapped are reported as timeouts.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return KindUnavailable
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps a kind to its response status.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindCapacity, KindSelfRating, KindEmptyRoster:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden, KindNotParticipant:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindDuplicate, KindMatchNotCompleted:
		return http.StatusConflict
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text safe to return to a caller.
func PublicMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case KindInternal:
			return "Internal server error"
		case KindTimeout:
			return "The data store did not respond in time, please retry"
		case KindUnavailable:
			return "Service temporarily unavailable, please retry"
		}
		return ae.Message
	}
	switch KindOf(err) {
	case KindTimeout:
		return "The data store did not respond in time, please retry"
	case KindUnavailable:
		return "Service temporarily unavailable, please retry"
	}
	return "Internal server error"
}

// ViolationsOf returns the validation violations carried by err, if any.
func ViolationsOf(err error) []string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Violations
	}
	return nil
}
