// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the hosted backend (GoTrue-compatible auth plus PostgREST-compatible
// tables).
//
// The concrete implementation is [HTTPBackend], usually obtained through
// [LazyBackend] so that no connection is configured until first use.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrInvalidCredentials] for a rejected sign-in).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-infaq/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthStateListener is notified after every auth-state change. session is
// nil for [models.AuthEventSignedOut]. Listeners run synchronously on the
// goroutine that caused the change.
type AuthStateListener func(ctx context.Context, event models.AuthEvent, session *models.Session)

// AuthProvider is the backend auth API as seen by the session manager.
type AuthProvider interface {
	// GetSession returns the current session, or nil when nobody is signed
	// in. It never returns an error for a missing session.
	GetSession(ctx context.Context) (*models.Session, error)

	// SignInWithPassword verifies credentials with the backend. A rejection
	// is reported as an error wrapping [ErrInvalidCredentials].
	SignInWithPassword(ctx context.Context, email, password string) (models.AuthResult, error)

	// SignOut invalidates the session on the backend and always forgets it
	// locally. The backend error, if any, is returned after local cleanup.
	SignOut(ctx context.Context) error

	// RefreshSession exchanges the refresh token for a new session.
	RefreshSession(ctx context.Context) (*models.Session, error)

	// OnAuthStateChange registers a listener for the lifetime of the
	// provider. Listeners are never removed.
	OnAuthStateChange(listener AuthStateListener)
}

// ProfileReader reads rows of the backend `profiles` table.
type ProfileReader interface {
	// GetProfile returns the profile with id, or nil when no row exists.
	// More than one row is reported as [ErrMultipleRows].
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}

// TransactionRepository performs CRUD on the backend `transactions` table.
// Writes return the row as stored by the backend.
type TransactionRepository interface {
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) (models.Transaction, error)
}

// BackendAdapter is everything the client needs from the backend.
type BackendAdapter interface {
	AuthProvider
	ProfileReader
	TransactionRepository
}
