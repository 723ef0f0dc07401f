package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-infaq/internal/config"
	"github.com/MKhiriev/go-infaq/internal/logger"
	"github.com/MKhiriev/go-infaq/models"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func sampleRecord() models.TransactionRecord {
	return models.TransactionRecord{
		ID:              "tx1",
		TransactionDate: "2026-03-01",
		Type:            models.TransactionInfaqMasuk,
		Amount:          1500000,
		Description:     "Infaq Jumat",
		UserID:          "u1",
		UserName:        "Bu Ani",
		CreatedAt:       "2026-03-01T08:00:00Z",
	}
}

// captureServer records every request body it receives.
func captureServer(t *testing.T) (*httptest.Server, <-chan map[string]json.RawMessage) {
	t.Helper()
	return captureServerN(t, 8)
}

func captureServerN(t *testing.T, capacity int) (*httptest.Server, <-chan map[string]json.RawMessage) {
	t.Helper()
	bodies := make(chan map[string]json.RawMessage, capacity)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var body map[string]json.RawMessage
		assert.NoError(t, json.Unmarshal(raw, &body))
		bodies <- body

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>opaque</html>"))
	}))
	t.Cleanup(srv.Close)
	return srv, bodies
}

func TestSyncToSheets_DeleteSendsOldRecordOnly(t *testing.T) {
	srv, bodies := captureServer(t)
	b := NewBridge(config.Sheets{ScriptURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())

	b.SyncToSheets(context.Background(), models.EventDelete, models.TransactionRecord{ID: "tx1"})

	body := <-bodies
	assert.JSONEq(t, `"DELETE"`, string(body["type"]))
	assert.JSONEq(t, `"transactions"`, string(body["table"]))
	assert.NotContains(t, body, "record")
	require.Contains(t, body, "old_record")

	var old models.TransactionRecord
	require.NoError(t, json.Unmarshal(body["old_record"], &old))
	assert.Equal(t, "tx1", old.ID)
}

func TestSyncToSheets_InsertAndUpdateSendRecordOnly(t *testing.T) {
	for _, ev := range []models.EventType{models.EventInsert, models.EventUpdate} {
		t.Run(string(ev), func(t *testing.T) {
			srv, bodies := captureServer(t)
			b := NewBridge(config.Sheets{ScriptURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())
			rec := sampleRecord()

			b.SyncToSheets(context.Background(), ev, rec)

			body := <-bodies
			assert.NotContains(t, body, "old_record")
			require.Contains(t, body, "record")

			var got models.TransactionRecord
			require.NoError(t, json.Unmarshal(body["record"], &got))
			assert.Equal(t, rec, got)
		})
	}
}

func TestSyncToSheets_SendsExactlyOnePost(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := NewBridge(config.Sheets{ScriptURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	b.SyncToSheets(context.Background(), models.EventInsert, sampleRecord())

	assert.Equal(t, int32(1), hits.Load(), "error statuses are not retried")
}

func TestSyncToSheets_UnconfiguredDoesNoIO(t *testing.T) {
	b := NewBridge(config.Sheets{}, logger.Nop())
	b.client.SetTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("unexpected network call")
		return nil, nil
	}))

	assert.False(t, b.Configured())
	assert.NotPanics(t, func() {
		b.SyncToSheets(context.Background(), models.EventInsert, sampleRecord())
	})
}

func TestSyncToSheets_NetworkFailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	b := NewBridge(config.Sheets{ScriptURL: url, RequestTimeout: 200 * time.Millisecond}, logger.Nop())

	assert.NotPanics(t, func() {
		b.SyncToSheets(context.Background(), models.EventUpdate, sampleRecord())
	})
}

func TestDispatch_SurvivesCallerCancellation(t *testing.T) {
	srv, bodies := captureServer(t)
	b := NewBridge(config.Sheets{ScriptURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	b.Dispatch(ctx, models.EventInsert, sampleRecord())
	cancel()

	require.NoError(t, b.Wait(context.Background()))
	select {
	case body := <-bodies:
		assert.JSONEq(t, `"INSERT"`, string(body["type"]))
	default:
		t.Fatal("dispatch did not reach the endpoint")
	}
}

func TestWait_HonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	b := NewBridge(config.Sheets{ScriptURL: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	b.Dispatch(context.Background(), models.EventInsert, sampleRecord())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, b.Wait(ctx), context.DeadlineExceeded)
}

func TestDispatch_AfterCloseIsDropped(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	b := NewBridge(config.Sheets{ScriptURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	b.Dispatch(context.Background(), models.EventInsert, sampleRecord())
	require.NoError(t, b.Close())
	assert.Equal(t, int32(1), hits.Load())

	b.Dispatch(context.Background(), models.EventDelete, sampleRecord())
	require.NoError(t, b.Wait(context.Background()))
	assert.Equal(t, int32(1), hits.Load(), "dispatch after close must not reach the endpoint")
}

func TestDispatch_ConcurrentWithClose(t *testing.T) {
	srv, _ := captureServerN(t, 64)
	b := NewBridge(config.Sheets{ScriptURL: srv.URL, RequestTimeout: time.Second}, logger.Nop())

	start := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		<-start
		for range 32 {
			b.Dispatch(context.Background(), models.EventInsert, sampleRecord())
		}
	}()

	close(start)
	assert.NoError(t, b.Close())
	<-finished
	require.NoError(t, b.Wait(context.Background()))
}
