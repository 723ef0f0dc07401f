package models

import (
	"errors"
	"time"
)

// TransactionType is the direction of money movement.
type TransactionType string

const (
	// TransactionInfaqMasuk is an incoming donation.
	TransactionInfaqMasuk TransactionType = "infaq_masuk"
	// TransactionPengeluaran is an expenditure.
	TransactionPengeluaran TransactionType = "pengeluaran"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionInfaqMasuk || t == TransactionPengeluaran
}

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("amount must be nonnegative")
	ErrEmptyTransactionDate   = errors.New("transaction date is required")
	ErrEmptyTransactionID     = errors.New("transaction id is required")
)

// Transaction is a row of the backend `transactions` table.
type Transaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	UserName        string          `json:"user_name,omitempty"`
	Type            TransactionType `json:"type"`
	Amount          float64         `json:"amount"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	TransactionDate string          `json:"transaction_date"`
	IsPenyisihan    bool            `json:"is_penyisihan"`
	CreatedAt       time.Time       `json:"created_at"`

	// Profiles is the embedded `profiles(name)` join returned by the backend
	// when listing with the owner's name.
	Profiles *TransactionOwner `json:"profiles,omitempty"`
}

// TransactionOwner is the joined owner profile of a transaction.
type TransactionOwner struct {
	Name string `json:"name"`
}

// TableName returns the name of the backend table that stores transactions.
func (t Transaction) TableName() string {
	return "transactions"
}

// OwnerName returns the joined profile name, falling back to UserName.
func (t Transaction) OwnerName() string {
	if t.Profiles != nil && t.Profiles.Name != "" {
		return t.Profiles.Name
	}
	return t.UserName
}

// Record converts t into the record shape mirrored to the spreadsheet.
func (t Transaction) Record() TransactionRecord {
	rec := TransactionRecord{
		ID:              t.ID,
		TransactionDate: t.TransactionDate,
		Type:            t.Type,
		Amount:          t.Amount,
		Description:     t.Description,
		IsPenyisihan:    t.IsPenyisihan,
		UserID:          t.UserID,
		UserName:        t.OwnerName(),
	}
	if !t.CreatedAt.IsZero() {
		rec.CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
	}
	return rec
}

// TransactionSummary aggregates a list of transactions.
type TransactionSummary struct {
	TotalInfaq       float64  `json:"total_infaq"`
	TotalPengeluaran float64  `json:"total_pengeluaran"`
	Saldo            float64  `json:"saldo"`
	TotalPenyisihan  *float64 `json:"total_penyisihan,omitempty"`
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	// ExcludePenyisihan hides reserved-fund rows.
	ExcludePenyisihan bool
	// Limit caps the number of rows; zero means no limit.
	Limit int
}
