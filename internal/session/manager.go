// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the client-side "who is logged in" state and keeps it
// in step with the backend auth provider.
//
// A single [Manager] is created at startup and injected wherever the current
// user or its capabilities are needed. State mutations are serialised by a
// mutex; overlapping operations (a login racing an auth-change notification)
// are not otherwise ordered and the last write to the user wins.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/models"
)

// ErrLoginFailed wraps every sign-in failure returned by [Manager.Login].
var ErrLoginFailed = errors.New("login failed")

// Manager is the single source of truth for the signed-in profile.
type Manager struct {
	auth     adapter.AuthProvider
	profiles adapter.ProfileReader
	logger   *logger.Logger

	initOnce sync.Once

	mu          sync.RWMutex
	state       models.SessionState
	subscribers map[int]chan models.SessionState
	nextSubID   int
}

// NewManager returns a Manager in the uninitialised state. Call
// [Manager.Init] once before reading the user.
func NewManager(auth adapter.AuthProvider, profiles adapter.ProfileReader, log *logger.Logger) *Manager {
	return &Manager{
		auth:        auth,
		profiles:    profiles,
		logger:      log.Component("session"),
		state:       models.SessionState{Loading: true},
		subscribers: make(map[int]chan models.SessionState),
	}
}

// Init resolves an existing backend session into a profile and registers
// the auth-change listener. Only the first call has any effect.
func (m *Manager) Init(ctx context.Context) {
	m.initOnce.Do(func() {
		m.init(ctx)
	})
}

func (m *Manager) init(ctx context.Context) {
	var user *models.Profile

	session, err := m.auth.GetSession(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "Manager.Init").Msg("could not read existing session")
	}
	if session != nil && session.User.ID != "" {
		user = m.resolveProfile(ctx, session.User.ID)
	}

	m.update(func(s *models.SessionState) {
		s.User = user
		s.Loading = false
		s.Initialized = true
	})

	m.auth.OnAuthStateChange(m.handleAuthChange)

	m.logger.Info().
		Str("func", "Manager.Init").
		Bool("authenticated", user != nil).
		Msg("session initialised")
}

// handleAuthChange re-resolves the profile on every provider notification.
func (m *Manager) handleAuthChange(ctx context.Context, event models.AuthEvent, session *models.Session) {
	log := m.logger.With().Str("event", string(event)).Logger()

	if session == nil || session.User.ID == "" {
		log.Debug().Msg("auth change without session, clearing user")
		m.SetUser(nil)
		return
	}

	m.SetUser(m.resolveProfile(ctx, session.User.ID))
	log.Debug().Str("user_id", session.User.ID).Msg("auth change applied")
}

// Login verifies credentials with the provider and, on success, loads the
// matching profile into the state. On failure the current user is left
// untouched and the provider error is returned wrapped in [ErrLoginFailed].
func (m *Manager) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	result, err := m.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		m.logger.Warn().Err(err).Str("func", "Manager.Login").Msg("sign in rejected")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	if result.User != nil && result.User.ID != "" {
		m.SetUser(m.resolveProfile(ctx, result.User.ID))
	}

	return result, nil
}

// Logout asks the provider to invalidate the session and then clears the
// user no matter what the provider answered. The provider error, if any, is
// returned so the caller can show it.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.auth.SignOut(ctx)
	m.SetUser(nil)

	if err != nil {
		m.logger.Warn().Err(err).Str("func", "Manager.Logout").Msg("backend sign out failed, local session cleared anyway")
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// SetUser replaces the current user. nil signs the client out locally.
func (m *Manager) SetUser(p *models.Profile) {
	m.update(func(s *models.SessionState) {
		s.User = p
	})
}

// GetUser returns the current user without touching the network.
func (m *Manager) GetUser() *models.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.User
}

// Snapshot returns a copy of the whole state.
func (m *Manager) Snapshot() models.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Capabilities derives the capability flags of the current user.
func (m *Manager) Capabilities() models.Capabilities {
	return m.Snapshot().Capabilities()
}

// Initialized reports whether Init has completed.
func (m *Manager) Initialized() bool {
	return m.Snapshot().Initialized
}

// Subscribe returns a channel receiving the state after every change and a
// function that stops the subscription. Slow readers only see the latest
// state.
func (m *Manager) Subscribe() (<-chan models.SessionState, func()) {
	ch := make(chan models.SessionState, 1)

	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = ch
	m.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

func (m *Manager) update(mutate func(s *models.SessionState)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mutate(&m.state)
	for _, ch := range m.subscribers {
		publishLatest(ch, m.state)
	}
}

// publishLatest replaces any unread state in ch with state.
func publishLatest(ch chan models.SessionState, state models.SessionState) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- state:
	default:
	}
}

// resolveProfile is the maybeSingle profile read. Lookup failures are
// logged and treated as a missing profile.
func (m *Manager) resolveProfile(ctx context.Context, userID string) *models.Profile {
	profile, err := m.profiles.GetProfile(ctx, userID)
	if err != nil {
		m.logger.Warn().
			Err(err).
			Str("func", "Manager.resolveProfile").
			Str("user_id", userID).
			Msg("profile lookup failed")
		return nil
	}
	if profile == nil {
		m.logger.Debug().Str("user_id", userID).Msg("no profile row for user")
	}
	return profile
}
