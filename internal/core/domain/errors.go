package domain

import "fmt"

// The API surfaces a closed set of error kinds. Every layer returns one of
// these; the HTTP boundary maps them to status codes and the JSON envelope.

// ValidationError rejects malformed or out-of-range input (422).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PropertyRequiredError rejects a missing required field (422) and names it.
type PropertyRequiredError struct {
	Message  string
	Property string
}

func (e *PropertyRequiredError) Error() string { return e.Message }

// PermissionError rejects unauthenticated or unauthorized access (401).
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

// ResponseError rejects a request on business grounds, e.g. a duplicate
// account or invalid credentials (417).
type ResponseError struct {
	Message string
}

func (e *ResponseError) Error() string { return e.Message }

// RouteError reports an unmatched path (404).
type RouteError struct {
	Message string
	Path    string
	Method  string
}

func (e *RouteError) Error() string { return e.Message }

// DatabaseError wraps a storage failure (500) with the originating operation
// name so the formatted response can point at it.
type DatabaseError struct {
	Message string
	Op      string
	Err     error
}

func (e *DatabaseError) Error() string { return e.Message }

func (e *DatabaseError) Unwrap() error { return e.Err }

// NewDatabaseError builds the standard retry-later message for a failed
// persistence operation.
func NewDatabaseError(what, op string, err error) *DatabaseError {
	return &DatabaseError{
		Message: fmt.Sprintf("An error occurred %s. Please retry after few minutes", what),
		Op:      op,
		Err:     err,
	}
}

func errValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func errRequired(message, property string) *PropertyRequiredError {
	return &PropertyRequiredError{Message: message, Property: property}
}

// ErrNotAuthorized is the business-level rejection used when a user scope is
// missing or does not resolve to a record.
func ErrNotAuthorized() *ResponseError {
	return &ResponseError{Message: "You are not authorized to access this resource"}
}
