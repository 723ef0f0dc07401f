package ledger

import "github.com/MKhiriev/go-infaq/models"

// Summarize totals txs. Saldo is income minus expenditure. The penyisihan
// total is only reported when withPenyisihan is set.
func Summarize(txs []models.Transaction, withPenyisihan bool) models.TransactionSummary {
	var (
		sum        models.TransactionSummary
		penyisihan float64
	)

	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionInfaqMasuk:
			sum.TotalInfaq += tx.Amount
		case models.TransactionPengeluaran:
			sum.TotalPengeluaran += tx.Amount
		}
		if tx.IsPenyisihan {
			penyisihan += tx.Amount
		}
	}

	sum.Saldo = sum.TotalInfaq - sum.TotalPengeluaran
	if withPenyisihan {
		sum.TotalPenyisihan = &penyisihan
	}
	return sum
}
