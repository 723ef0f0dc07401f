package http

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/internal/mock"
	"github.com/MKhiriev/go-infaq/internal/spreadsheet"
	"github.com/MKhiriev/go-infaq/internal/store"
	"github.com/MKhiriev/go-infaq/models"
)

func newTestRouter(t *testing.T, token string) (http.Handler, *mock.MockSheet) {
	t.Helper()
	sheet := mock.NewMockSheet(gomock.NewController(t))
	h := NewHandler(sheet, token, models.NewAppBuildInfo("1.2.0", "2026-03-01", "abc123"), logger.Nop())
	return h.Init(), sheet
}

func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

// ── POST /webhook ───────────────────────────────────────────────────────────

func TestWebhook_Success(t *testing.T) {
	router, sheet := newTestRouter(t, "")

	sheet.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p models.SheetSyncPayload) (models.EventType, error) {
			require.NotNil(t, p.OldRecord)
			assert.Equal(t, "tx1", p.OldRecord.ID)
			assert.Nil(t, p.Record)
			return models.EventDelete, nil
		})

	rr := serve(router, http.MethodPost, "/webhook",
		`{"type":"DELETE","table":"transactions","old_record":{"id":"tx1"}}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"event":"DELETE"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestWebhook_FailuresAnswer200(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		applyErr error
	}{
		{name: "malformed json", body: `{"type":`},
		{name: "empty body"},
		{name: "apply error", body: `{"type":"INSERT","record":{"id":"tx1"}}`, applyErr: spreadsheet.ErrUnknownEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, sheet := newTestRouter(t, "")
			if tt.applyErr != nil {
				sheet.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(models.EventType(""), tt.applyErr)
			}

			rr := serve(router, http.MethodPost, "/webhook", tt.body, nil)

			assert.Equal(t, http.StatusOK, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestWebhook_WrongMethodIs404(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rr := serve(router, http.MethodGet, "/webhook", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── POST /reconcile ─────────────────────────────────────────────────────────

func TestReconcile_Token(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
		wantCall   bool
	}{
		{name: "open when unconfigured", wantStatus: http.StatusOK, wantCall: true},
		{name: "matching token", configured: "s3cret", sent: "s3cret", wantStatus: http.StatusOK, wantCall: true},
		{name: "missing token", configured: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", configured: "s3cret", sent: "guess", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, sheet := newTestRouter(t, tt.configured)
			if tt.wantCall {
				sheet.EXPECT().Reconcile(gomock.Any()).Return(3, nil)
			}

			headers := map[string]string{}
			if tt.sent != "" {
				headers[reconcileTokenHeader] = tt.sent
			}
			rr := serve(router, http.MethodPost, "/reconcile", "", headers)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCall {
				assert.JSONEq(t, `{"success":true,"rows":3}`, rr.Body.String())
			}
		})
	}
}

func TestReconcile_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "no backend", err: spreadsheet.ErrNoBackend, want: http.StatusServiceUnavailable},
		{name: "store failure", err: errors.Join(spreadsheet.ErrReconcileFailed, store.ErrExecutingStatement), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, sheet := newTestRouter(t, "")
			sheet.EXPECT().Reconcile(gomock.Any()).Return(0, tt.err)

			rr := serve(router, http.MethodPost, "/reconcile", "", nil)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// ── GET /rows ───────────────────────────────────────────────────────────────

func TestRows_JSON(t *testing.T) {
	router, sheet := newTestRouter(t, "")
	sheet.EXPECT().Rows(gomock.Any()).Return([]models.SheetRow{{RowNum: 2, ID: "tx1", Type: "Masuk"}}, nil)

	rr := serve(router, http.MethodGet, "/rows", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var rows []models.SheetRow
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].RowNum)
}

func TestRows_Gzip(t *testing.T) {
	router, sheet := newTestRouter(t, "")
	sheet.EXPECT().Rows(gomock.Any()).Return([]models.SheetRow{{RowNum: 2, ID: "tx1"}}, nil)

	rr := serve(router, http.MethodGet, "/rows", "", map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(plain), `"id":"tx1"`)
}

func TestRows_Error(t *testing.T) {
	router, sheet := newTestRouter(t, "")
	sheet.EXPECT().Rows(gomock.Any()).Return(nil, store.ErrScanningRows)

	rr := serve(router, http.MethodGet, "/rows", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ── GET /version ────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rr := serve(router, http.MethodGet, "/version", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "version 1.2.0 (abc123, 2026-03-01)", rr.Body.String())
}

func TestUnknownRouteIs404(t *testing.T) {
	router, _ := newTestRouter(t, "")

	rr := serve(router, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
