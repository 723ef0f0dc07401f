// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger is the transaction use-case layer of the client. It talks
// to the backend table, enforces the capability rules of the signed-in
// profile and mirrors every successful write to the spreadsheet.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/session"
	"github.com/MKhiriev/go-infaq/internal/sheets"
	"github.com/MKhiriev/go-infaq/internal/utils"
	"github.com/MKhiriev/go-infaq/internal/validators"
	"github.com/MKhiriev/go-infaq/models"
)

// Service implements the transaction use cases.
type Service struct {
	backend   adapter.TransactionRepository
	session   *session.Manager
	sheets    sheets.Syncer
	ids       utils.IDGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewService wires a Service. ids may be nil, in which case UUIDv7 ids are
// generated.
func NewService(backend adapter.TransactionRepository, sess *session.Manager, syncer sheets.Syncer, ids utils.IDGenerator, log *logger.Logger) *Service {
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}
	return &Service{
		backend:   backend,
		session:   sess,
		sheets:    syncer,
		ids:       ids,
		validator: validators.NewTransactionValidator(),
		now:       time.Now,
		logger:    log.Component("ledger"),
	}
}

// List returns the transactions visible to the current user, newest first.
// Penyisihan rows are hidden unless the user may view them.
func (s *Service) List(ctx context.Context, limit int) ([]models.Transaction, error) {
	caps := s.session.Capabilities()
	if !caps.IsAuthenticated {
		return nil, ErrNotAuthenticated
	}

	txs, err := s.backend.ListTransactions(ctx, models.TransactionFilter{
		ExcludePenyisihan: !caps.CanViewPenyisihan,
		Limit:             limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// Create stores a new transaction owned by the current user and mirrors it
// as an INSERT.
func (s *Service) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	user, err := s.writer()
	if err != nil {
		return models.Transaction{}, err
	}

	tx.ID = s.ids.Generate()
	tx.UserID = user.ID
	tx.Description = strings.TrimSpace(tx.Description)
	tx.TransactionDate = strings.TrimSpace(tx.TransactionDate)
	if err = s.validate(ctx, tx); err != nil {
		return models.Transaction{}, err
	}

	created, err := s.backend.CreateTransaction(ctx, tx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.mirror(ctx, models.EventInsert, created, user)
	return created, nil
}

// Update overwrites an existing transaction and mirrors it as an UPDATE.
func (s *Service) Update(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	user, err := s.writer()
	if err != nil {
		return models.Transaction{}, err
	}

	tx.Description = strings.TrimSpace(tx.Description)
	tx.TransactionDate = strings.TrimSpace(tx.TransactionDate)
	if err = s.validate(ctx, tx, validators.FieldID); err != nil {
		return models.Transaction{}, err
	}

	updated, err := s.backend.UpdateTransaction(ctx, tx)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction %s: %w", tx.ID, err)
	}

	s.mirror(ctx, models.EventUpdate, updated, user)
	return updated, nil
}

// Delete removes a transaction and mirrors the removed row as a DELETE.
func (s *Service) Delete(ctx context.Context, id string) error {
	user, err := s.writer()
	if err != nil {
		return err
	}
	if err = s.validator.Validate(ctx, models.Transaction{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}

	deleted, err := s.backend.DeleteTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	if deleted.ID == "" {
		deleted.ID = id
	}

	s.mirror(ctx, models.EventDelete, deleted, user)
	return nil
}

// validate checks the content fields of tx plus any extra named fields.
func (s *Service) validate(ctx context.Context, tx models.Transaction, extra ...string) error {
	fields := append([]string{
		validators.FieldType,
		validators.FieldAmount,
		validators.FieldTransactionDate,
		validators.FieldDescription,
	}, extra...)
	if err := s.validator.Validate(ctx, tx, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}
	return nil
}

func (s *Service) writer() (*models.Profile, error) {
	user := s.session.GetUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	if !models.CapabilitiesOf(user).CanCreateTransaction {
		return nil, ErrForbidden
	}
	return user, nil
}

// mirror hands the event to the spreadsheet bridge. The backend row does not
// carry the owner name, so the writer's name fills it in when missing.
func (s *Service) mirror(ctx context.Context, event models.EventType, tx models.Transaction, user *models.Profile) {
	record := tx.Record()
	if record.UserName == "" && record.UserID == user.ID {
		record.UserName = user.Name
	}
	if record.CreatedAt == "" && event != models.EventDelete {
		record.CreatedAt = s.now().UTC().Format(time.RFC3339)
	}

	s.logger.Debug().
		Str("event", string(event)).
		Str("transaction_id", record.ID).
		Msg("mirroring transaction")
	s.sheets.Dispatch(ctx, event, record)
}
