// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sheets mirrors transaction mutations to an external spreadsheet
// webhook.
//
// The mirror is a side channel. A sync never reports failure to its caller
// and never retries; a burst of mutations may reach the spreadsheet out of
// order or not at all.
package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-infaq/internal/config"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/utils"
	"github.com/MKhiriev/go-infaq/models"
)

//go:generate mockgen -source=bridge.go -destination=../mock/sheets_mock.go -package=mock

// Syncer forwards transaction events to the spreadsheet.
type Syncer interface {
	// SyncToSheets sends one event and returns once the POST has finished
	// or failed.
	SyncToSheets(ctx context.Context, eventType models.EventType, record models.TransactionRecord)
	// Dispatch sends one event in the background.
	Dispatch(ctx context.Context, eventType models.EventType, record models.TransactionRecord)
}

// Bridge is the resty-backed [Syncer].
type Bridge struct {
	client    *utils.HTTPClient
	scriptURL string
	logger    *logger.Logger

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// NewBridge builds a Bridge for cfg. An empty cfg.ScriptURL yields a bridge
// whose every sync is a logged no-op.
func NewBridge(cfg config.Sheets, log *logger.Logger) *Bridge {
	return &Bridge{
		client: utils.NewHTTPClient(utils.HTTPClientOptions{
			Timeout: cfg.RequestTimeout,
			Headers: map[string]string{"Content-Type": "application/json"},
		}),
		scriptURL: cfg.ScriptURL,
		logger:    log.Component("sheets"),
	}
}

// Configured reports whether an endpoint is set.
func (b *Bridge) Configured() bool {
	return b.scriptURL != ""
}

// SyncToSheets POSTs the event payload to the configured endpoint exactly
// once. The response is closed unread.
func (b *Bridge) SyncToSheets(ctx context.Context, eventType models.EventType, record models.TransactionRecord) {
	log := b.logger.With().
		Str("func", "Bridge.SyncToSheets").
		Str("event", string(eventType)).
		Str("transaction_id", record.ID).
		Logger()

	if !b.Configured() {
		log.Warn().Msg("spreadsheet script url not configured")
		return
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(models.NewSheetSyncPayload(eventType, record)).
		SetDoNotParseResponse(true).
		Post(b.scriptURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to sync to spreadsheet")
		return
	}
	if body := resp.RawBody(); body != nil {
		_ = body.Close()
	}

	log.Info().Msg("synced to spreadsheet")
}

// Dispatch runs SyncToSheets on its own goroutine. The request keeps the
// values of ctx but outlives its cancellation, so a write whose caller gave
// up is still mirrored. Use [Bridge.Wait] to drain pending dispatches.
// Once the bridge is drained, further dispatches are logged and dropped.
func (b *Bridge) Dispatch(ctx context.Context, eventType models.EventType, record models.TransactionRecord) {
	detached := context.WithoutCancel(ctx)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		b.logger.Warn().
			Str("func", "Bridge.Dispatch").
			Str("event", string(eventType)).
			Str("transaction_id", record.ID).
			Msg("bridge closed, event dropped")
		return
	}
	b.inflight.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.inflight.Done()
		b.SyncToSheets(detached, eventType, record)
	}()
}

// Wait stops accepting dispatches and blocks until every pending one has
// finished or ctx is done.
func (b *Bridge) Wait(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// drainTimeout bounds Close.
const drainTimeout = 5 * time.Second

// Close waits a short while for pending dispatches.
func (b *Bridge) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := b.Wait(ctx); err != nil {
		b.logger.Warn().Err(err).Msg("spreadsheet dispatches still pending on close")
		return err
	}
	return nil
}
