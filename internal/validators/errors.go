package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID          = errors.New("invalid user ID")
	ErrInvalidTransactionDate = errors.New("transaction date must be YYYY-MM-DD")
	ErrDescriptionTooLong     = errors.New("description is too long")
)
