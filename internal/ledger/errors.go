package ledger

import "errors"

var (
	// ErrNotAuthenticated is returned when no profile is signed in.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the signed-in role may not write.
	ErrForbidden = errors.New("role is not allowed to modify transactions")
	// ErrInvalidTransaction wraps model validation failures.
	ErrInvalidTransaction = errors.New("invalid transaction")
)
