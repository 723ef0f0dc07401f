// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables (including those loaded
// from the dotenv file) using caarlos0/env. Names are composed from the
// `envPrefix` and `env` tags, e.g. Backend.AnonKey reads BACKEND_ANON_KEY.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
