package validators

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-infaq/models"
)

const (
	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldType            = "type"
	FieldAmount          = "amount"
	FieldTransactionDate = "transaction_date"
	FieldDescription     = "description"
)

const (
	transactionDateLayout = "2006-01-02"
	maxDescriptionLength  = 500
)

// TransactionValidator validates ledger transactions.
type TransactionValidator struct {
}

func NewTransactionValidator() Validator {
	return &TransactionValidator{}
}

func (v *TransactionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateTransaction checks the content fields when no field is named.
func (v *TransactionValidator) validateTransaction(_ context.Context, tx models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldAmount, FieldTransactionDate, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(tx.ID) == "" {
				return models.ErrEmptyTransactionID
			}
		case FieldUserID:
			if strings.TrimSpace(tx.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldType:
			if !tx.Type.Valid() {
				return models.ErrInvalidTransactionType
			}
		case FieldAmount:
			if tx.Amount < 0 {
				return models.ErrNegativeAmount
			}
		case FieldTransactionDate:
			date := strings.TrimSpace(tx.TransactionDate)
			if date == "" {
				return models.ErrEmptyTransactionDate
			}
			if _, err := time.Parse(transactionDateLayout, date); err != nil {
				return ErrInvalidTransactionDate
			}
		case FieldDescription:
			if utf8.RuneCountInString(tx.Description) > maxDescriptionLength {
				return ErrDescriptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
