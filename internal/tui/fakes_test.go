package tui

import (
	"context"

	"github.com/MKhiriev/go-infaq/models"
)

type fakeSession struct {
	state     models.SessionState
	loginErr  error
	noProfile bool
	logoutErr error

	logins  []string
	logouts int
}

func (s *fakeSession) Login(_ context.Context, email, _ string) (models.AuthResult, error) {
	s.logins = append(s.logins, email)
	if s.loginErr != nil {
		return models.AuthResult{}, s.loginErr
	}
	if !s.noProfile {
		s.state.User = &models.Profile{ID: "u-1", Email: email, Role: models.RoleGuru}
	}
	return models.AuthResult{}, nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.logouts++
	s.state.User = nil
	return s.logoutErr
}

func (s *fakeSession) Snapshot() models.SessionState { return s.state }

func (s *fakeSession) Subscribe() (<-chan models.SessionState, func()) {
	ch := make(chan models.SessionState)
	return ch, func() {}
}

type fakeLedger struct {
	items     []models.Transaction
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	created []models.Transaction
	updated []models.Transaction
	deleted []string
}

func (l *fakeLedger) List(context.Context, int) ([]models.Transaction, error) {
	return l.items, l.listErr
}

func (l *fakeLedger) Create(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	l.created = append(l.created, tx)
	return tx, l.createErr
}

func (l *fakeLedger) Update(_ context.Context, tx models.Transaction) (models.Transaction, error) {
	l.updated = append(l.updated, tx)
	return tx, l.updateErr
}

func (l *fakeLedger) Delete(_ context.Context, id string) error {
	l.deleted = append(l.deleted, id)
	return l.deleteErr
}
