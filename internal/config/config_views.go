package config

// ClientConfig is the subset of [StructuredConfig] used by the terminal
// client.
type ClientConfig struct {
	App     App
	Backend Backend
	Sheets  Sheets
	Storage Storage
	Workers Workers
}

// SheetHookConfig is the subset of [StructuredConfig] used by the webhook
// receiver.
type SheetHookConfig struct {
	App     App
	Backend Backend
	Sheets  Sheets
	Storage Storage
	Server  Server
	Workers Workers

	// ReconcileAt is Workers.ReconcileAt parsed.
	ReconcileAt Clock
}

// GetClientConfig loads the merged configuration and narrows it to the
// client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Client()
}

// GetSheetHookConfig loads the merged configuration and narrows it to the
// receiver view.
func GetSheetHookConfig() (*SheetHookConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}
	return cfg.SheetHook()
}

// Client narrows cfg to the client view and validates it.
func (cfg *StructuredConfig) Client() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Backend: cfg.Backend,
		Sheets:  cfg.Sheets,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// SheetHook narrows cfg to the receiver view and validates it.
func (cfg *StructuredConfig) SheetHook() (*SheetHookConfig, error) {
	hookCfg := &SheetHookConfig{
		App:     cfg.App,
		Backend: cfg.Backend,
		Sheets:  cfg.Sheets,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}
	if err := hookCfg.validate(); err != nil {
		return nil, err
	}

	clock, err := ParseClock(cfg.Workers.ReconcileAt)
	if err != nil {
		return nil, ErrInvalidWorkerConfigs
	}
	hookCfg.ReconcileAt = clock

	return hookCfg, nil
}
