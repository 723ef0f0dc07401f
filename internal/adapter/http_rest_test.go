package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-infaq/models"
)

func TestGetProfile(t *testing.T) {
	tests := []struct {
		name     string
		rows     []map[string]any
		wantNil  bool
		wantErr  error
		wantName string
	}{
		{name: "zero rows is not an error", rows: []map[string]any{}, wantNil: true},
		{name: "one row", rows: []map[string]any{{"id": "u1", "name": "Bu Ani", "role": "guru"}}, wantName: "Bu Ani"},
		{name: "two rows", rows: []map[string]any{{"id": "u1"}, {"id": "u1"}}, wantNil: true, wantErr: ErrMultipleRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, profilesPath, r.URL.Path)
				assert.Equal(t, "*", r.URL.Query().Get("select"))
				assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))
				writeJSON(t, w, http.StatusOK, tt.rows)
			}))
			defer srv.Close()

			b, _ := newTestBackend(t, srv.URL)
			p, err := b.GetProfile(context.Background(), "u1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, models.RoleGuru, p.Role)
		})
	}
}

func TestGetProfile_UsesAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, testAnonKey, r.Header.Get("apikey"))
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	b, sessions := newTestBackend(t, srv.URL)
	require.NoError(t, sessions.Save(context.Background(), models.Session{AccessToken: "user-token"}))

	_, err := b.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
}

func TestGetProfile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"message": "JWT expired"})
	}))
	defer srv.Close()

	b, _ := newTestBackend(t, srv.URL)
	_, err := b.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "JWT expired")
}

func TestListTransactions_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, transactionsPath, r.URL.Path)
		assert.Equal(t, "*,profiles(name)", q.Get("select"))
		assert.Equal(t, "transaction_date.desc", q.Get("order"))
		assert.Equal(t, "eq.false", q.Get("is_penyisihan"))
		assert.Equal(t, "50", q.Get("limit"))

		writeJSON(t, w, http.StatusOK, []map[string]any{{
			"id":               "t1",
			"user_id":          "u1",
			"type":             "infaq_masuk",
			"amount":           1500000,
			"transaction_date": "2026-02-01",
			"created_at":       "2026-02-01T03:00:00.123456+00:00",
			"profiles":         map[string]any{"name": "Pak Budi"},
		}})
	}))
	defer srv.Close()

	b, _ := newTestBackend(t, srv.URL)
	txs, err := b.ListTransactions(context.Background(), models.TransactionFilter{ExcludePenyisihan: true, Limit: 50})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Pak Budi", txs[0].OwnerName())
	assert.Equal(t, 1500000.0, txs[0].Amount)
	assert.False(t, txs[0].CreatedAt.IsZero())
}

func TestListTransactions_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("is_penyisihan"))
		assert.False(t, r.URL.Query().Has("limit"))
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	b, _ := newTestBackend(t, srv.URL)
	txs, err := b.ListTransactions(context.Background(), models.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestCreateTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "t1", body["id"])
		assert.Equal(t, "pengeluaran", body["type"])
		assert.NotContains(t, body, "created_at")
		assert.NotContains(t, body, "profiles")

		body["created_at"] = "2026-02-01T03:00:00Z"
		writeJSON(t, w, http.StatusCreated, []any{body})
	}))
	defer srv.Close()

	b, _ := newTestBackend(t, srv.URL)
	got, err := b.CreateTransaction(context.Background(), models.Transaction{
		ID: "t1", UserID: "u1", Type: models.TransactionPengeluaran, Amount: 2000, TransactionDate: "2026-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.t404", r.URL.Query().Get("id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "id")
		assert.NotContains(t, body, "user_id")

		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	b, _ := newTestBackend(t, srv.URL)
	_, err := b.UpdateTransaction(context.Background(), models.Transaction{ID: "t404", Type: models.TransactionInfaqMasuk})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTransaction_RequiresID(t *testing.T) {
	b, _ := newTestBackend(t, "http://127.0.0.1:1")
	_, err := b.UpdateTransaction(context.Background(), models.Transaction{})
	assert.ErrorIs(t, err, models.ErrEmptyTransactionID)
}

func TestDeleteTransaction_ReturnsDeletedRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "eq.t1", r.URL.Query().Get("id"))
		writeJSON(t, w, http.StatusOK, []map[string]any{{"id": "t1", "amount": 10}})
	}))
	defer srv.Close()

	b, _ := newTestBackend(t, srv.URL)
	got, err := b.DeleteTransaction(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
}

func TestDeleteTransaction_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]any{"message": "permission denied for table transactions"})
	}))
	defer srv.Close()

	b, _ := newTestBackend(t, srv.URL)
	_, err := b.DeleteTransaction(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrForbidden)
}
