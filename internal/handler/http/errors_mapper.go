package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-infaq/internal/adapter"
	"github.com/MKhiriev/go-infaq/internal/spreadsheet"
	"github.com/MKhiriev/go-infaq/internal/store"
)

var errorStatusMap = map[error]int{
	spreadsheet.ErrUnknownEvent:  http.StatusBadRequest,
	spreadsheet.ErrMissingRecord: http.StatusBadRequest,
	spreadsheet.ErrEmptyRecordID: http.StatusBadRequest,
	spreadsheet.ErrNoBackend:     http.StatusServiceUnavailable,

	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrForbidden:           http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
