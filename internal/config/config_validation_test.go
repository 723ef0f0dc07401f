package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructured() *StructuredConfig {
	cfg := Defaults()
	cfg.Backend.URL = "https://project.example.co"
	cfg.Backend.AnonKey = "anon"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "bad reconcile time", mutate: func(c *StructuredConfig) { c.Workers.ReconcileAt = "25:00" }, wantErr: ErrInvalidWorkerConfigs},
		{name: "backend not http", mutate: func(c *StructuredConfig) { c.Backend.URL = "ftp://x" }, wantErr: ErrInvalidBackendConfigs},
		{name: "sheets not http", mutate: func(c *StructuredConfig) { c.Sheets.ScriptURL = "script" }, wantErr: ErrInvalidSheetsConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructured()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_RequiresBackend(t *testing.T) {
	cfg := Defaults()
	_, err := cfg.Client()
	assert.ErrorIs(t, err, ErrInvalidBackendConfigs)

	cfg = validStructured()
	cfg.Workers.TokenRefreshInterval = 0
	_, err = cfg.Client()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)

	cfg = validStructured()
	cfg.Storage.SessionDB.DSN = ""
	_, err = cfg.Client()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestClient_SheetsOptional(t *testing.T) {
	clientCfg, err := validStructured().Client()
	require.NoError(t, err)
	assert.Empty(t, clientCfg.Sheets.ScriptURL)
	assert.Equal(t, time.Minute, clientCfg.Workers.TokenRefreshInterval)
}

func TestSheetHook_Defaults(t *testing.T) {
	hookCfg, err := Defaults().SheetHook()
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 6}, hookCfg.ReconcileAt)
	assert.Equal(t, "localhost:8081", hookCfg.Server.HTTPAddress)
}

func TestSheetHook_BackendURLNeedsKey(t *testing.T) {
	cfg := Defaults()
	cfg.Backend.URL = "https://project.example.co"
	_, err := cfg.SheetHook()
	assert.ErrorIs(t, err, ErrInvalidBackendConfigs)
}

func TestSheetHook_RequiresAddress(t *testing.T) {
	cfg := Defaults()
	cfg.Server.HTTPAddress = ""
	_, err := cfg.SheetHook()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("06:05")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 6, Minute: 5}, c)
	assert.Equal(t, "06:05", c.String())

	_, err = ParseClock("6am")
	assert.Error(t, err)
}
