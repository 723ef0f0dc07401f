package spreadsheet

import (
	"github.com/MKhiriev/go-infaq/internal/utils"
	"github.com/MKhiriev/go-infaq/models"
)

const (
	typeMasuk  = "Masuk"
	typeKeluar = "Keluar"

	penyisihanYes = "Ya"
	penyisihanNo  = "Tidak"
)

// NewRow converts a sync record into a sheet row. RowNum is left zero; the
// store assigns positions.
func NewRow(rec models.TransactionRecord) models.SheetRow {
	row := models.SheetRow{
		ID:            rec.ID,
		Date:          rec.TransactionDate,
		Type:          typeKeluar,
		Amount:        rec.Amount,
		AmountDisplay: utils.FormatRupiah(rec.Amount),
		Description:   rec.Description,
		Penyisihan:    penyisihanNo,
		UserID:        rec.UserID,
		UserName:      rec.UserName,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.Type == models.TransactionInfaqMasuk {
		row.Type = typeMasuk
	}
	if rec.IsPenyisihan {
		row.Penyisihan = penyisihanYes
	}
	return row
}
