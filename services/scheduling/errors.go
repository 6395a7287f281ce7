package scheduling

import "fmt"

// ValidationError marks a client mistake: a bad reference, an out-of-range
// field or a malformed value. Handlers map it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks an identifier that does not resolve to a record.
// Handlers map it to a 404 response.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}
