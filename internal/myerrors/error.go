package myerrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfRange   = errors.New("page out of range")
)

const (
	MessageInvalidInput = "Invalid request, only numbers are accepted"
	MessageNotFound     = "Page not found"
)

// RequestError carries the message shown to the client next to the
// error kind used to pick the status code.
type RequestError struct {
	Kind    error
	Message string
}

func (r *RequestError) Error() string {
	return r.Message
}

func (r *RequestError) Unwrap() error {
	return r.Kind
}

func NewInvalidInputError() *RequestError {
	return &RequestError{Kind: ErrInvalidInput, Message: MessageInvalidInput}
}

func NewOutOfRangeError(maxPage int) *RequestError {
	return &RequestError{Kind: ErrOutOfRange, Message: OutOfRangeMessage(maxPage)}
}
