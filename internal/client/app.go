package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/tui"
)

type App struct {
	session SessionStore
	ui      UI
	workers Worker
	closers []io.Closer
	logger  *logger.Logger
}

// NewApp wires the runtime. closers are closed in order when Run returns,
// after the workers have stopped.
func NewApp(session SessionStore, ui UI, workers Worker, log *logger.Logger, closers ...io.Closer) *App {
	return &App{
		session: session,
		ui:      ui,
		workers: workers,
		closers: closers,
		logger:  log.Component("client"),
	}
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.session.Init(ctx)

	a.workers.Start(ctx)
	defer a.workers.Stop()

	for {
		if a.session.Snapshot().User == nil {
			err := a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Msg("signed out, back to login")
	}
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.close").Msg("close failed")
		}
	}
}
