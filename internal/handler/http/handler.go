package http

import (
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/spreadsheet"
	"github.com/MKhiriev/go-infaq/models"
)

type Handler struct {
	sheet          spreadsheet.Sheet
	reconcileToken string
	buildInfo      models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler builds a Handler. An empty reconcileToken leaves POST /reconcile
// open.
func NewHandler(sheet spreadsheet.Sheet, reconcileToken string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		sheet:          sheet,
		reconcileToken: reconcileToken,
		buildInfo:      buildInfo,
		logger:         logger,
	}
}
