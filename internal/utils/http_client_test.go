package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{})

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{})

	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(HTTPClientOptions{})
	client2 := NewHTTPClient(HTTPClientOptions{})

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_AppliesOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{
		BaseURL: srv.URL + "/",
		Timeout: 5 * time.Second,
		Headers: map[string]string{"apikey": "anon-key"},
	})

	assert.Equal(t, srv.URL, client.BaseURL)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/rest/v1/profiles")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
