// Package apierror defines the typed failures returned by the Keyhaven API
// client. Every failure, whether produced by the remote API or by the
// transport itself, is an *Error carrying the same four fields so callers
// can branch on Kind or inspect Status/Code/Details generically.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure.
type Kind string

const (
	KindAPI            Kind = "api" // generic fallback for unclassified failures
	KindAuthentication Kind = "authentication"
	KindNotFound       Kind = "not_found"
	KindValidation     Kind = "validation"
	KindRateLimit      Kind = "rate_limit"
	KindTimeout        Kind = "timeout"
	KindConnection     Kind = "connection"
)

// Error is the root error type for all Keyhaven API failures.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status; 408 for timeouts, 0 when the host was unreachable
	Code    string // machine-readable code supplied by the API, if any
	Message string
	Details map[string]any // structured details payload supplied by the API, if any
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("keyhaven: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("keyhaven: %s", e.Message)
}

// New builds an *Error with the kind derived from the HTTP status.
func New(status int, code, message string, details map[string]any) *Error {
	return &Error{
		Kind:    KindForStatus(status),
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Timeout builds the failure for a connect or read deadline being exceeded
// before a response was received.
func Timeout(message string) *Error {
	return &Error{Kind: KindTimeout, Status: http.StatusRequestTimeout, Message: message}
}

// Connection builds the failure for a DNS or connection-level fault where
// no HTTP status exists.
func Connection(message string) *Error {
	return &Error{Kind: KindConnection, Status: 0, Message: message}
}

// KindForStatus maps a non-2xx HTTP status to its error kind.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindAuthentication
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusTooManyRequests:
		return KindRateLimit
	default:
		return KindAPI
	}
}

// AsError unwraps err into an *Error, or nil if err is not one.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

func isKind(err error, kind Kind) bool {
	if apiErr := AsError(err); apiErr != nil {
		return apiErr.Kind == kind
	}
	return false
}

// IsNotFound reports whether err is a NotFound API failure.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsAuthentication reports whether err is an Authentication API failure.
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsValidation reports whether err is a Validation API failure.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsRateLimit reports whether err is a RateLimit API failure.
func IsRateLimit(err error) bool { return isKind(err, KindRateLimit) }

// IsTimeout reports whether err is a connect/read Timeout failure.
func IsTimeout(err error) bool { return isKind(err, KindTimeout) }

// IsConnection reports whether err is a connection-level failure.
func IsConnection(err error) bool { return isKind(err, KindConnection) }
