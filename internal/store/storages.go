package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-infaq/internal/config"
	"github.com/MKhiriev/go-infaq/internal/logger"
)

// ClientStorages groups the storage used by the terminal client.
type ClientStorages struct {
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the session database, applies migrations and
// wires the session repository. An empty DSN selects in-memory storage.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	if cfg.SessionDB.DSN == "" {
		log.Warn().Str("func", "NewClientStorages").Msg("no session database configured, session will not survive restarts")
		return &ClientStorages{SessionRepository: NewMemorySessionRepository()}, nil
	}

	db, err := openAndMigrate(ctx, cfg.SessionDB, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SheetStorages groups the storage used by the webhook receiver.
type SheetStorages struct {
	SheetRepository SheetRepository

	db *DB
}

// NewSheetStorages opens the sheet database, applies migrations and wires
// the sheet repository.
func NewSheetStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*SheetStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := openAndMigrate(ctx, cfg.SheetDB, log)
	if err != nil {
		return nil, err
	}

	return &SheetStorages{
		SheetRepository: NewSheetRepository(db, log),
		db:              db,
	}, nil
}

// IsRetryable reports whether err from the sheet repository is transient.
func (s *SheetStorages) IsRetryable(err error) bool {
	if s.db == nil {
		return false
	}
	return s.db.IsRetryable(err)
}

// Close releases the underlying database.
func (s *SheetStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openAndMigrate(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}
