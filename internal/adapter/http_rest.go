package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-infaq/models"
)

// transactionWrite is the column set the client may write. Server-owned
// columns (created_at, the profiles join) are never sent.
type transactionWrite struct {
	ID              string                 `json:"id,omitempty"`
	UserID          string                 `json:"user_id,omitempty"`
	Type            models.TransactionType `json:"type"`
	Amount          float64                `json:"amount"`
	Description     string                 `json:"description"`
	Category        string                 `json:"category,omitempty"`
	TransactionDate string                 `json:"transaction_date"`
	IsPenyisihan    bool                   `json:"is_penyisihan"`
}

func newTransactionWrite(tx models.Transaction) transactionWrite {
	return transactionWrite{
		ID:              tx.ID,
		UserID:          tx.UserID,
		Type:            tx.Type,
		Amount:          tx.Amount,
		Description:     tx.Description,
		Category:        tx.Category,
		TransactionDate: tx.TransactionDate,
		IsPenyisihan:    tx.IsPenyisihan,
	}
}

func eq(v string) string {
	return "eq." + v
}

// GetProfile implements [ProfileReader] via
// GET /rest/v1/profiles?select=*&id=eq.<id> with maybeSingle semantics.
func (h *HTTPBackend) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profiles []models.Profile

	resp, err := h.authedRequest(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("id", eq(id)).
		SetResult(&profiles).
		Get(profilesPath)
	if err != nil {
		return nil, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	switch len(profiles) {
	case 0:
		return nil, nil
	case 1:
		return &profiles[0], nil
	default:
		return nil, fmt.Errorf("%w: %d profiles for id %s", ErrMultipleRows, len(profiles), id)
	}
}

// ListTransactions implements [TransactionRepository]. Rows are ordered by
// transaction_date descending and carry the owner's profile name.
func (h *HTTPBackend) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	var txs []models.Transaction

	req := h.authedRequest(ctx).
		SetQueryParam("select", transactionSelect).
		SetQueryParam("order", "transaction_date.desc").
		SetResult(&txs)
	if filter.ExcludePenyisihan {
		req.SetQueryParam("is_penyisihan", "eq.false")
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get(transactionsPath)
	if err != nil {
		return nil, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return txs, nil
}

// CreateTransaction implements [TransactionRepository] via
// POST /rest/v1/transactions.
func (h *HTTPBackend) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	var rows []models.Transaction

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetQueryParam("select", transactionSelect).
		SetBody(newTransactionWrite(tx)).
		SetResult(&rows).
		Post(transactionsPath)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return firstRow(rows, tx.ID)
}

// UpdateTransaction implements [TransactionRepository] via
// PATCH /rest/v1/transactions?id=eq.<id>. Zero matched rows (missing or
// hidden by row-level security) is [ErrNotFound].
func (h *HTTPBackend) UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	if tx.ID == "" {
		return models.Transaction{}, models.ErrEmptyTransactionID
	}

	write := newTransactionWrite(tx)
	write.ID = ""
	write.UserID = ""

	var rows []models.Transaction
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", eq(tx.ID)).
		SetQueryParam("select", transactionSelect).
		SetBody(write).
		SetResult(&rows).
		Patch(transactionsPath)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return firstRow(rows, tx.ID)
}

// DeleteTransaction implements [TransactionRepository] via
// DELETE /rest/v1/transactions?id=eq.<id> and returns the deleted row.
func (h *HTTPBackend) DeleteTransaction(ctx context.Context, id string) (models.Transaction, error) {
	if id == "" {
		return models.Transaction{}, models.ErrEmptyTransactionID
	}

	var rows []models.Transaction
	resp, err := h.authedRequest(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", eq(id)).
		SetQueryParam("select", transactionSelect).
		SetResult(&rows).
		Delete(transactionsPath)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("delete transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return firstRow(rows, id)
}

func firstRow(rows []models.Transaction, id string) (models.Transaction, error) {
	if len(rows) == 0 {
		return models.Transaction{}, fmt.Errorf("%w: transaction %s", ErrNotFound, id)
	}
	return rows[0], nil
}
