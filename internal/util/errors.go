package util

import "errors"

// Application error taxonomy. Services return these (possibly wrapped); the
// HTTP layer maps each to a response category.
var (
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNotFound           = errors.New("resource not found")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTimeout            = errors.New("operation timed out")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
