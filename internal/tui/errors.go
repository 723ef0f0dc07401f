// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/app"
	"github.com/MKhiriev/go-infaq/internal/ledger"
)

// errNoProfile is reported when sign-in succeeded but the account has no
// profile row, so there is nobody to show the dashboard to.
var errNoProfile = errors.New(app.MsgNoProfile)

// logoutNotice describes a sign-out that cleared the local session but was
// not confirmed by the backend.
func logoutNotice(err error) string {
	return app.MsgLogoutIncomplete + ": " + humanizeError(err)
}

// humanizeError turns an error into a message for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, adapter.ErrSessionExpired), errors.Is(err, ledger.ErrNotAuthenticated):
		return app.MsgSessionExpired
	case errors.Is(err, ledger.ErrForbidden), errors.Is(err, adapter.ErrForbidden):
		return app.MsgForbidden
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgNetworkUnavailable
	}

	return err.Error()
}
