package data

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the client. Callers match them with
// errors.Is; none of them is retried automatically.
var (
	// ErrAuthentication means the token is missing or not accepted.
	ErrAuthentication = errors.New("orats: authentication failed")
	// ErrPermission means the token lacks the subscription tier for
	// the requested resource.
	ErrPermission = errors.New("orats: insufficient permissions for this resource")
	// ErrNotFound means the resource path does not exist.
	ErrNotFound = errors.New("orats: resource not found")
	// ErrRateLimited means the API rejected the call for exceeding
	// the request quota.
	ErrRateLimited = errors.New("orats: rate limit exceeded")
)

// ValidationError reports a request that failed its construction-time
// checks, naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("orats: invalid request: %s: %s", e.Field, e.Reason)
}

// StatusError reports a non-success HTTP status that does not map to a
// more specific kind.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("orats: http status %d", e.StatusCode)
}

// APIError reports a failure the API signalled inside an otherwise
// well-formed response envelope.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("orats: api error: %s", e.Message)
}

// ParseError reports a payload whose shape did not match the declared
// response type.
type ParseError struct {
	Resource string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("orats: parse %s response: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// statusError maps an HTTP status code to the matching error kind.
func statusError(code int) error {
	switch code {
	case 401:
		return ErrAuthentication
	case 403:
		return ErrPermission
	case 404:
		return ErrNotFound
	case 429:
		return ErrRateLimited
	default:
		return &StatusError{StatusCode: code}
	}
}
