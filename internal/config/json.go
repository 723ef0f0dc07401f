package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app"`

	Backend struct {
		URL            string   `json:"url"`
		AnonKey        string   `json:"anon_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend"`

	Sheets struct {
		ScriptURL      string   `json:"script_url"`
		RequestTimeout Duration `json:"request_timeout"`
		ReconcileToken string   `json:"reconcile_token"`
	} `json:"sheets"`

	Storage struct {
		SessionDB struct {
			DSN string `json:"dsn"`
		} `json:"session_db"`
		SheetDB struct {
			DSN string `json:"dsn"`
		} `json:"sheet_db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Workers struct {
		TokenRefreshInterval Duration `json:"token_refresh_interval"`
		ReconcileAt          string   `json:"reconcile_at"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Backend: Backend{
			URL:            jsonCfg.Backend.URL,
			AnonKey:        jsonCfg.Backend.AnonKey,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Sheets: Sheets{
			ScriptURL:      jsonCfg.Sheets.ScriptURL,
			RequestTimeout: time.Duration(jsonCfg.Sheets.RequestTimeout),
			ReconcileToken: jsonCfg.Sheets.ReconcileToken,
		},
		Storage: Storage{
			SessionDB: DB{DSN: jsonCfg.Storage.SessionDB.DSN},
			SheetDB:   DB{DSN: jsonCfg.Storage.SheetDB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			TokenRefreshInterval: time.Duration(jsonCfg.Workers.TokenRefreshInterval),
			ReconcileAt:          jsonCfg.Workers.ReconcileAt,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" or "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
