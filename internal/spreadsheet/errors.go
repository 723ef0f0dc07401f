package spreadsheet

import "errors"

var (
	ErrUnknownEvent    = errors.New("unknown event type")
	ErrMissingRecord   = errors.New("payload carries no record")
	ErrEmptyRecordID   = errors.New("record id is required")
	ErrNoBackend       = errors.New("backend is not configured")
	ErrReconcileFailed = errors.New("reconcile failed")
)
