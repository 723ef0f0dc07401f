package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-infaq/models"
)

const (
	sessionsTable  = "auth_sessions"
	sheetRowsTable = "sheet_rows"

	// sessionStorageKey is the single key the client session is stored under.
	sessionStorageKey = "infaq-auth-token"
)

var (
	sessionColumns = []string{
		"access_token",
		"refresh_token",
		"token_type",
		"expires_in",
		"expires_at",
		"user_id",
		"user_email",
	}

	sheetRowColumns = []string{
		"id",
		"tanggal",
		"tipe",
		"jumlah",
		"jumlah_display",
		"keterangan",
		"penyisihan",
		"user_id",
		"user_name",
		"created_at",
	}

	// firstRowWithID targets the lowest-seq row carrying an id.
	firstRowWithID = "seq = (SELECT MIN(seq) FROM " + sheetRowsTable + " WHERE id = ?)"
)

func buildLoadSessionQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return wrapBuildErr(b.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		ToSql())
}

// buildSaveSessionQuery renders an upsert; ON CONFLICT ... DO UPDATE is
// understood by both SQLite and PostgreSQL.
func buildSaveSessionQuery(b sq.StatementBuilderType, key string, s models.Session, now time.Time) (string, []any, error) {
	return wrapBuildErr(b.Insert(sessionsTable).
		Columns(append([]string{"storage_key"}, append(sessionColumns, "updated_at")...)...).
		Values(key, s.AccessToken, s.RefreshToken, s.TokenType, s.ExpiresIn, s.ExpiresAt, s.User.ID, s.User.Email, now).
		Suffix(`ON CONFLICT (storage_key) DO UPDATE SET
			access_token  = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type    = excluded.token_type,
			expires_in    = excluded.expires_in,
			expires_at    = excluded.expires_at,
			user_id       = excluded.user_id,
			user_email    = excluded.user_email,
			updated_at    = excluded.updated_at`).
		ToSql())
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return wrapBuildErr(b.Delete(sessionsTable).
		Where(sq.Eq{"storage_key": key}).
		ToSql())
}

func buildAppendRowQuery(b sq.StatementBuilderType, row models.SheetRow) (string, []any, error) {
	return wrapBuildErr(b.Insert(sheetRowsTable).
		Columns(sheetRowColumns...).
		Values(sheetRowValues(row)...).
		ToSql())
}

func buildUpdateFirstRowQuery(b sq.StatementBuilderType, row models.SheetRow) (string, []any, error) {
	return wrapBuildErr(b.Update(sheetRowsTable).
		Set("tanggal", row.Date).
		Set("tipe", row.Type).
		Set("jumlah", row.Amount).
		Set("jumlah_display", row.AmountDisplay).
		Set("keterangan", row.Description).
		Set("penyisihan", row.Penyisihan).
		Set("user_id", row.UserID).
		Set("user_name", row.UserName).
		Set("created_at", row.CreatedAt).
		Where(firstRowWithID, row.ID).
		ToSql())
}

func buildDeleteFirstRowQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return wrapBuildErr(b.Delete(sheetRowsTable).
		Where(firstRowWithID, id).
		ToSql())
}

func buildClearRowsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuildErr(b.Delete(sheetRowsTable).ToSql())
}

func buildListRowsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return wrapBuildErr(b.Select(sheetRowColumns...).
		From(sheetRowsTable).
		OrderBy("seq").
		ToSql())
}

func sheetRowValues(row models.SheetRow) []any {
	return []any{
		row.ID,
		row.Date,
		row.Type,
		row.Amount,
		row.AmountDisplay,
		row.Description,
		row.Penyisihan,
		row.UserID,
		row.UserName,
		row.CreatedAt,
	}
}

func wrapBuildErr(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
