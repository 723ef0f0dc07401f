package config

import "errors"

// Validation errors returned by the view validators when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates missing or malformed backend
	// settings (URL, anon key, request timeout).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidSheetsConfigs indicates a malformed spreadsheet webhook URL.
	ErrInvalidSheetsConfigs = errors.New("invalid sheets configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates missing receiver listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval or a malformed reconcile time).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
