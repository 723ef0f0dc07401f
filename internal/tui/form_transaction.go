package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-infaq/models"
)

const dateLayout = "2006-01-02"

var (
	errInvalidDate   = errors.New("tanggal harus berformat YYYY-MM-DD")
	errInvalidAmount = errors.New("jumlah harus berupa angka tidak negatif")
)

// form fields in focus order
const (
	fieldType = iota
	fieldDate
	fieldAmount
	fieldDescription
	fieldPenyisihan
	fieldCount
)

// transactionForm collects a new transaction or edits an existing one. Type
// and penyisihan are toggles; the rest are text inputs.
type transactionForm struct {
	// base is the row being edited; zero for a new transaction.
	base models.Transaction

	txType     models.TransactionType
	penyisihan bool

	date        textinput.Model
	amount      textinput.Model
	description textinput.Model

	focus  int
	errMsg string
}

func newTransactionForm(today time.Time) transactionForm {
	date := textinput.New()
	date.Width = 12
	date.CharLimit = 10
	date.SetValue(today.Format(dateLayout))

	amount := textinput.New()
	amount.Width = 20
	amount.Placeholder = "50000"

	description := textinput.New()
	description.Width = 40
	description.CharLimit = 200

	return transactionForm{
		txType:      models.TransactionInfaqMasuk,
		date:        date,
		amount:      amount,
		description: description,
	}
}

// editTransactionForm returns a form prefilled from tx.
func editTransactionForm(tx models.Transaction) transactionForm {
	f := newTransactionForm(time.Now())
	f.base = tx
	f.txType = tx.Type
	f.penyisihan = tx.IsPenyisihan
	f.date.SetValue(tx.TransactionDate)
	f.amount.SetValue(formatAmount(tx.Amount))
	f.description.SetValue(tx.Description)
	return f
}

// editing reports whether the form edits an existing row.
func (f transactionForm) editing() bool {
	return f.base.ID != ""
}

// Update handles one message. submitted is true when enter produced a valid
// transaction.
func (f transactionForm) Update(msg tea.Msg) (form transactionForm, tx models.Transaction, submitted bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.setFocus((f.focus + 1) % fieldCount)
			return f, tx, false, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
			return f, tx, false, nil
		case key.Matches(keyMsg, keys.enter):
			parsed, err := f.toTransaction()
			if err != nil {
				f.errMsg = err.Error()
				return f, tx, false, nil
			}
			f.errMsg = ""
			return f, parsed, true, nil
		}

		if f.focus == fieldType || f.focus == fieldPenyisihan {
			if key.Matches(keyMsg, keys.left, keys.right, keys.toggle) {
				f.toggle()
			}
			return f, tx, false, nil
		}
	}

	switch f.focus {
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	case fieldAmount:
		f.amount, cmd = f.amount.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return f, tx, false, cmd
}

func (f *transactionForm) toggle() {
	switch f.focus {
	case fieldType:
		if f.txType == models.TransactionInfaqMasuk {
			f.txType = models.TransactionPengeluaran
		} else {
			f.txType = models.TransactionInfaqMasuk
		}
	case fieldPenyisihan:
		f.penyisihan = !f.penyisihan
	}
}

func (f *transactionForm) setFocus(i int) {
	f.date.Blur()
	f.amount.Blur()
	f.description.Blur()

	f.focus = i
	switch i {
	case fieldDate:
		f.date.Focus()
	case fieldAmount:
		f.amount.Focus()
	case fieldDescription:
		f.description.Focus()
	}
}

func (f transactionForm) toTransaction() (models.Transaction, error) {
	date := strings.TrimSpace(f.date.Value())
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.Transaction{}, errInvalidDate
	}

	amount, err := parseAmount(f.amount.Value())
	if err != nil {
		return models.Transaction{}, err
	}

	tx := f.base
	tx.Type = f.txType
	tx.Amount = amount
	tx.Description = strings.TrimSpace(f.description.Value())
	tx.TransactionDate = date
	tx.IsPenyisihan = f.penyisihan
	return tx, nil
}

// formatAmount writes v so that parseAmount reads it back.
func formatAmount(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}

// parseAmount reads Indonesian notation: dots group thousands and a comma
// starts the fraction, so "Rp 1.500.000" and "1.500.000,50" both parse.
func parseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "Rp"), "rp")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, errInvalidAmount
	}
	return v, nil
}

func (f transactionForm) View() string {
	typeLabel := "Masuk"
	if f.txType == models.TransactionPengeluaran {
		typeLabel = "Keluar"
	}

	cursor := func(field int) string {
		if f.focus == field {
			return "> "
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(cursor(fieldType) + "Tipe        ◀ " + typeLabel + " ▶\n")
	b.WriteString(cursor(fieldDate) + "Tanggal     [" + f.date.View() + "]\n")
	b.WriteString(cursor(fieldAmount) + "Jumlah (Rp) [" + f.amount.View() + "]\n")
	b.WriteString(cursor(fieldDescription) + "Keterangan  [" + f.description.View() + "]\n")
	b.WriteString(cursor(fieldPenyisihan) + "Penyisihan  [" + yesNo(f.penyisihan) + "]\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(f.errMsg) + "\n")
	}

	title := "TRANSAKSI BARU"
	if f.editing() {
		title = "UBAH TRANSAKSI"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: kolom berikut │ ←/→/spasi: ubah │ enter: simpan │ esc: batal")
}
