// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-infaq/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// SessionStore is the part of the session manager the runtime needs.
type SessionStore interface {
	Init(ctx context.Context)
	Snapshot() models.SessionState
}

// UI is the terminal front end.
type UI interface {
	LoginFlow(ctx context.Context) error
	MainLoop(ctx context.Context) (logout bool, err error)
}

// Worker is a background job started once per run.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
