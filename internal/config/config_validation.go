// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"
)

// validate checks invariants shared by every binary. Only values that are
// set are checked here; each view decides which groups are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.ReconcileAt != "" {
		if _, err := ParseClock(cfg.Workers.ReconcileAt); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
		}
	}

	if cfg.Backend.URL != "" && !isHTTPURL(cfg.Backend.URL) {
		return fmt.Errorf("%w: backend url must be http(s)", ErrInvalidBackendConfigs)
	}

	if cfg.Sheets.ScriptURL != "" && !isHTTPURL(cfg.Sheets.ScriptURL) {
		return fmt.Errorf("%w: script url must be http(s)", ErrInvalidSheetsConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Backend.URL == "" || cfg.Backend.AnonKey == "" || cfg.Backend.RequestTimeout <= 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Storage.SessionDB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.TokenRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *SheetHookConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.SheetDB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// reconciliation reads transactions from the backend, so a URL without
	// a key would fail on every run
	if cfg.Backend.URL != "" && cfg.Backend.AnonKey == "" {
		return ErrInvalidBackendConfigs
	}

	return nil
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" 24-hour time of day.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
