package services

import "errors"

var (
	// ErrNotFound is returned when an order, menu item or ingredient id is
	// unknown so controllers can respond with 404.
	ErrNotFound = errors.New("not found")

	// ErrCompletedOrder rejects a status change that would move an order out
	// of its terminal state.
	ErrCompletedOrder = errors.New("order already completed")
)

// ValidationError communicates rule violations back to HTTP handlers before
// anything touches the store.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

func newValidationError(msg string) error {
	return ValidationError{Message: msg}
}

// IsValidation distinguishes bad input from infrastructure failures.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
