package store

import (
	"context"

	"github.com/MKhiriev/go-infaq/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the client's backend auth session between runs.
type SessionRepository interface {
	// Load returns the stored session or [ErrSessionNotFound].
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, session models.Session) error
	// Delete removes the stored session. Deleting nothing is not an error.
	Delete(ctx context.Context) error
}

// SheetRepository stores the spreadsheet rows maintained by the webhook
// receiver. Row IDs are not unique; update and delete act on the first row
// carrying the ID.
type SheetRepository interface {
	AppendRow(ctx context.Context, row models.SheetRow) error
	// UpdateRow overwrites the first row with row.ID and reports whether one
	// was found.
	UpdateRow(ctx context.Context, row models.SheetRow) (bool, error)
	// DeleteRow removes the first row with id and reports whether one was
	// found.
	DeleteRow(ctx context.Context, id string) (bool, error)
	// ReplaceAll atomically replaces every data row.
	ReplaceAll(ctx context.Context, rows []models.SheetRow) error
	// ListRows returns the rows in sheet order with RowNum starting at 2.
	ListRows(ctx context.Context) ([]models.SheetRow, error)
}
