// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingReconcileToken is returned when a reconcile request carries
	// no X-Reconcile-Token header while a token is configured.
	ErrMissingReconcileToken = errors.New("missing `X-Reconcile-Token` header")

	// ErrInvalidReconcileToken is returned when the header does not match.
	ErrInvalidReconcileToken = errors.New("invalid `X-Reconcile-Token` header")
)
