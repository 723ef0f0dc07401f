// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain values before they are written to the
// backend.
//
// A [Validator] validates a whole value or, when field names are passed,
// only those fields. Unknown fields and unsupported types are errors so a
// typo in a caller never silently skips a check.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
