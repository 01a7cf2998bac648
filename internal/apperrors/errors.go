package apperrors

import (
	"errors"
)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrNotLoginHash = errors.New("fragment is not a login callback")

	ErrReadOnlyResource = errors.New("resource does not support writes")

	ErrItemOutOfRange = errors.New("item index out of range")
	ErrNoPendingItem  = errors.New("no item is being edited")
	ErrUnknownField   = errors.New("unknown field name")

	ErrValidationFailed = errors.New("validation failed")
)
