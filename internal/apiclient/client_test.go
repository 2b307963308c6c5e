package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoDecodesSuccessResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	c, err := NewWithBase(srv.URL)
	require.NoError(t, err)

	var out struct {
		Status string `json:"status"`
	}
	require.NoError(t, c.Do(http.MethodGet, "/api/ping", nil, &out))
	assert.Equal(t, "ok", out.Status)
}

func TestDoSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, 3, in["qty"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := NewWithBase(srv.URL)
	require.NoError(t, err)

	require.NoError(t, c.Do(http.MethodPost, "/api/cart", map[string]int{"qty": 3}, nil))
}

func TestDoMapsErrorBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "stok yetersiz"})
	}))
	defer srv.Close()

	c, err := NewWithBase(srv.URL)
	require.NoError(t, err)

	err = c.Do(http.MethodPost, "/api/orders", nil, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "stok yetersiz", apiErr.Message)
}

func TestDoErrorWithoutMessageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	defer srv.Close()

	c, err := NewWithBase(srv.URL)
	require.NoError(t, err)

	err = c.Do(http.MethodGet, "/", nil, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTeapot, apiErr.Status)
	assert.Contains(t, apiErr.Message, "418")
}

func TestNewRequiresEnv(t *testing.T) {
	t.Setenv("API_URL", "")
	_, err := New()
	assert.Error(t, err)

	t.Setenv("API_URL", "http://localhost:9999/")
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", c.baseURL)
}
