package spreadsheet

import (
	"context"

	"github.com/MKhiriev/go-infaq/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/spreadsheet_mock.go -package=mock

// Sheet is the receiver-side spreadsheet: it applies webhook events to the
// stored rows and can be rebuilt from the backend.
type Sheet interface {
	// Apply routes one sync payload to the matching row operation and
	// returns the event type it handled.
	Apply(ctx context.Context, payload models.SheetSyncPayload) (models.EventType, error)
	// Reconcile rebuilds every data row from the backend and returns the
	// number of rows written.
	Reconcile(ctx context.Context) (int, error)
	// Rows returns the rows in sheet order.
	Rows(ctx context.Context) ([]models.SheetRow, error)
	// IsRetryable reports whether err is a transient storage error.
	IsRetryable(err error) bool
}
