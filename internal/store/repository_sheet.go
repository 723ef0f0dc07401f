package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/models"
)

// firstDataRow is the sheet row number of the first data row; row 1 holds
// the header.
const firstDataRow = 2

// sheetRepository is the SQL-backed implementation of [SheetRepository].
// Sheet order is insertion order (the seq column).
type sheetRepository struct {
	*DB
	logger *logger.Logger
}

// NewSheetRepository constructs a [SheetRepository] backed by db.
func NewSheetRepository(db *DB, logger *logger.Logger) SheetRepository {
	logger.Debug().Msg("creating sheet repository")
	return &sheetRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sheetRepository) AppendRow(ctx context.Context, row models.SheetRow) error {
	log := logger.FromContext(ctx)

	if row.ID == "" {
		return ErrEmptyRowID
	}

	query, args, err := buildAppendRowQuery(r.builder(), row)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sheetRepository.AppendRow").
			Str("id", row.ID).
			Msg("failed to append row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sheetRepository) UpdateRow(ctx context.Context, row models.SheetRow) (bool, error) {
	if row.ID == "" {
		return false, ErrEmptyRowID
	}

	query, args, err := buildUpdateFirstRowQuery(r.builder(), row)
	if err != nil {
		return false, err
	}

	return r.execAffecting(ctx, "sheetRepository.UpdateRow", row.ID, query, args)
}

func (r *sheetRepository) DeleteRow(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrEmptyRowID
	}

	query, args, err := buildDeleteFirstRowQuery(r.builder(), id)
	if err != nil {
		return false, err
	}

	return r.execAffecting(ctx, "sheetRepository.DeleteRow", id, query, args)
}

func (r *sheetRepository) execAffecting(ctx context.Context, fn, id, query string, args []any) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("id", id).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute statement")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// ReplaceAll deletes every row and inserts rows in order inside a single
// transaction. On any failure the previous rows are kept.
func (r *sheetRepository) ReplaceAll(ctx context.Context, rows []models.SheetRow) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sheetRepository.ReplaceAll").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	clearQuery, _, err := buildClearRowsQuery(r.builder())
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, clearQuery); err != nil {
		log.Err(err).Str("func", "sheetRepository.ReplaceAll").Msg("failed to clear rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for i, row := range rows {
		if err = r.insertTx(ctx, tx, row); err != nil {
			log.Err(err).
				Str("func", "sheetRepository.ReplaceAll").
				Int("index", i).
				Str("id", row.ID).
				Msg("failed to insert row")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sheetRepository.ReplaceAll").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *sheetRepository) insertTx(ctx context.Context, tx *sql.Tx, row models.SheetRow) error {
	if row.ID == "" {
		return ErrEmptyRowID
	}

	query, args, err := buildAppendRowQuery(r.builder(), row)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sheetRepository) ListRows(ctx context.Context) ([]models.SheetRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRowsQuery(r.builder())
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sheetRepository.ListRows").Msg("failed to query rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.SheetRow, 0, 64)
	for rows.Next() {
		var row models.SheetRow
		if err = rows.Scan(
			&row.ID,
			&row.Date,
			&row.Type,
			&row.Amount,
			&row.AmountDisplay,
			&row.Description,
			&row.Penyisihan,
			&row.UserID,
			&row.UserName,
			&row.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "sheetRepository.ListRows").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		row.RowNum = int64(len(result) + firstDataRow)
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
