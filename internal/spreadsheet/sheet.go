// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package spreadsheet implements the receiving end of the transaction sync:
// the rows a spreadsheet would hold, kept in a SQL store and maintained from
// webhook events and periodic rebuilds.
package spreadsheet

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/store"
	"github.com/MKhiriev/go-infaq/models"
)

// RetryClassifier reports whether a storage error is transient.
type RetryClassifier func(err error) bool

type sheet struct {
	rows      store.SheetRepository
	backend   adapter.TransactionRepository
	retryable RetryClassifier
	logger    *logger.Logger
}

// NewSheet wires a [Sheet] over rows. backend may be nil, in which case
// Reconcile fails with [ErrNoBackend]; retryable may be nil to treat every
// error as permanent.
func NewSheet(rows store.SheetRepository, backend adapter.TransactionRepository, retryable RetryClassifier, log *logger.Logger) Sheet {
	if retryable == nil {
		retryable = func(error) bool { return false }
	}
	return &sheet{
		rows:      rows,
		backend:   backend,
		retryable: retryable,
		logger:    log.Component("spreadsheet"),
	}
}

func (s *sheet) Apply(ctx context.Context, payload models.SheetSyncPayload) (models.EventType, error) {
	event, ok := models.ParseEventType(string(payload.Type))
	if !ok {
		return payload.Type, fmt.Errorf("%w: %q", ErrUnknownEvent, payload.Type)
	}

	record := payload.Subject()
	if record == nil {
		return event, ErrMissingRecord
	}
	if record.ID == "" {
		return event, ErrEmptyRecordID
	}

	log := logger.FromContext(ctx).With().
		Str("event", string(event)).
		Str("transaction_id", record.ID).
		Logger()

	switch event {
	case models.EventInsert:
		if err := s.rows.AppendRow(ctx, NewRow(*record)); err != nil {
			return event, fmt.Errorf("append row: %w", err)
		}
	case models.EventUpdate:
		found, err := s.rows.UpdateRow(ctx, NewRow(*record))
		if err != nil {
			return event, fmt.Errorf("update row: %w", err)
		}
		if !found {
			log.Info().Msg("no row to update")
		}
	case models.EventDelete:
		found, err := s.rows.DeleteRow(ctx, record.ID)
		if err != nil {
			return event, fmt.Errorf("delete row: %w", err)
		}
		if !found {
			log.Info().Msg("no row to delete")
		}
	}

	log.Debug().Msg("event applied")
	return event, nil
}

func (s *sheet) Reconcile(ctx context.Context) (int, error) {
	if s.backend == nil {
		return 0, ErrNoBackend
	}

	txs, err := s.backend.ListTransactions(ctx, models.TransactionFilter{})
	if err != nil {
		return 0, fmt.Errorf("%w: list transactions: %w", ErrReconcileFailed, err)
	}

	rows := make([]models.SheetRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, NewRow(tx.Record()))
	}

	if err = s.rows.ReplaceAll(ctx, rows); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReconcileFailed, err)
	}

	s.logger.Info().Int("rows", len(rows)).Msg("sheet rebuilt from backend")
	return len(rows), nil
}

func (s *sheet) Rows(ctx context.Context) ([]models.SheetRow, error) {
	rows, err := s.rows.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rows: %w", err)
	}
	return rows, nil
}

func (s *sheet) IsRetryable(err error) bool {
	return s.retryable(err)
}
