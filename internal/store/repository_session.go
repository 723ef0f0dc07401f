// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// The client keeps at most one session, stored under a fixed key.
type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *sessionRepository) Load(ctx context.Context) (*models.Session, error) {
	query, args, err := buildLoadSessionQuery(r.builder(), sessionStorageKey)
	if err != nil {
		return nil, err
	}

	var s models.Session
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&s.AccessToken,
		&s.RefreshToken,
		&s.TokenType,
		&s.ExpiresIn,
		&s.ExpiresAt,
		&s.User.ID,
		&s.User.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Load").Msg("failed to load session")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &s, nil
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	query, args, err := buildSaveSessionQuery(r.builder(), sessionStorageKey, session, r.now().UTC())
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("user_id", session.User.ID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery(r.builder(), sessionStorageKey)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
