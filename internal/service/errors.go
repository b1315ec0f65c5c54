package service

import "errors"

// Error categories the HTTP layer maps onto status codes. Concrete failures
// wrap one of these and carry their own message.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrConflict         = errors.New("conflict")
)

type opError struct {
	kind error
	msg  string
}

func (e *opError) Error() string { return e.msg }
func (e *opError) Unwrap() error { return e.kind }

func notFound(msg string) error {
	return &opError{kind: ErrNotFound, msg: msg}
}

func invalidOperation(msg string) error {
	return &opError{kind: ErrInvalidOperation, msg: msg}
}

func conflict(msg string) error {
	return &opError{kind: ErrConflict, msg: msg}
}
