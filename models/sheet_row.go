package models

// SheetRow is one data row of the exported spreadsheet. Column order follows
// [SheetHeader].
type SheetRow struct {
	// RowNum is the 1-based sheet row; row 1 is the header.
	RowNum int64 `json:"row_num"`

	ID            string  `json:"id"`
	Date          string  `json:"tanggal"`
	Type          string  `json:"tipe"`
	Amount        float64 `json:"jumlah"`
	AmountDisplay string  `json:"jumlah_display"`
	Description   string  `json:"keterangan"`
	Penyisihan    string  `json:"penyisihan"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	CreatedAt     string  `json:"created_at"`
}

// SheetHeader is the fixed header row of the exported spreadsheet.
var SheetHeader = []string{
	"ID", "Tanggal", "Tipe", "Jumlah", "Keterangan",
	"Penyisihan", "User ID", "User Name", "Created At",
}

// Values returns the row cells in header order.
func (r SheetRow) Values() []string {
	return []string{
		r.ID, r.Date, r.Type, r.AmountDisplay, r.Description,
		r.Penyisihan, r.UserID, r.UserName, r.CreatedAt,
	}
}
