package validation

// Error captures field level validation issues that callers can surface to
// API clients.
type Error struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (e *Error) HasErrors() bool {
	return e != nil && len(e.FieldErrors) > 0
}

// Add records a field level validation error. The first message per field
// wins; later rules do not overwrite it.
func (e *Error) Add(field, message string) {
	if e.FieldErrors == nil {
		e.FieldErrors = make(map[string]string)
	}
	if _, ok := e.FieldErrors[field]; ok {
		return
	}
	e.FieldErrors[field] = message
}

// Merge copies entries from another validation error into the receiver.
func (e *Error) Merge(other *Error) {
	if other == nil || len(other.FieldErrors) == 0 {
		return
	}
	for field, msg := range other.FieldErrors {
		e.Add(field, msg)
	}
}

// OrNil returns the error when it carries issues, nil otherwise, so callers
// can return it directly without a typed-nil pitfall.
func (e *Error) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
