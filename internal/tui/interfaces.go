package tui

import (
	"context"

	"github.com/MKhiriev/go-infaq/models"
)

// Session is the part of the session manager the UI drives.
type Session interface {
	Login(ctx context.Context, email, password string) (models.AuthResult, error)
	Logout(ctx context.Context) error
	Snapshot() models.SessionState
	Subscribe() (<-chan models.SessionState, func())
}

// Ledger is the transaction use-case layer as seen by the dashboard.
type Ledger interface {
	List(ctx context.Context, limit int) ([]models.Transaction, error)
	Create(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	Update(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	Delete(ctx context.Context, id string) error
}
