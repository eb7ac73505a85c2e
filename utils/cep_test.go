package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCepTestClient(handler http.HandlerFunc) (*CepClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &CepClient{BaseURL: server.URL, HTTP: server.Client()}
	return client, server
}

func TestCepLookupSuccess(t *testing.T) {
	client, server := newCepTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/01310100", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cep":"01310100","street":"Avenida Paulista","neighborhood":"Bela Vista","city":"São Paulo","state":"SP"}`))
	})
	defer server.Close()

	address, err := client.Lookup(context.Background(), "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "Avenida Paulista", address.Street)
	assert.Equal(t, "Bela Vista", address.Neighborhood)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, "SP", address.State)
}

func TestCepLookupNotFound(t *testing.T) {
	client, server := newCepTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.Lookup(context.Background(), "99999999")
	assert.ErrorIs(t, err, ErrCepNotFound)
}

func TestCepLookupMissingCityIsNotFound(t *testing.T) {
	client, server := newCepTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"street":""}`))
	})
	defer server.Close()

	_, err := client.Lookup(context.Background(), "01310100")
	assert.ErrorIs(t, err, ErrCepNotFound)
}

func TestCepLookupUpstreamError(t *testing.T) {
	client, server := newCepTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.Lookup(context.Background(), "01310100")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCepNotFound)
}

func TestCepLookupRejectsShortCodes(t *testing.T) {
	client := &CepClient{BaseURL: "http://unused", HTTP: http.DefaultClient}
	_, err := client.Lookup(context.Background(), "0131")
	assert.ErrorIs(t, err, ErrInvalidCep)
}

func TestCepLookupGuardFiresOncePerDistinctCode(t *testing.T) {
	var guard CepLookupGuard

	// typing up to 8 digits only fires at exactly 8
	for _, partial := range []string{"0", "013", "01310", "01310-10"} {
		_, fire := guard.Observe(partial)
		assert.False(t, fire, "partial %q should not fire", partial)
	}

	code, fire := guard.Observe("01310-100")
	require.True(t, fire)
	assert.Equal(t, "01310100", code)

	// retyping the same value does not fire again
	_, fire = guard.Observe("01310-100")
	assert.False(t, fire)
	_, fire = guard.Observe("01310100")
	assert.False(t, fire)

	// shrinking the field resets the marker, so the code fires once more
	_, fire = guard.Observe("01310")
	assert.False(t, fire)
	code, fire = guard.Observe("01310100")
	require.True(t, fire)
	assert.Equal(t, "01310100", code)
}

func TestCepLookupGuardRetryAfterFailure(t *testing.T) {
	var guard CepLookupGuard

	_, fire := guard.Observe("99999999")
	require.True(t, fire)

	_, fire = guard.Observe("99999999")
	require.False(t, fire)

	guard.MarkFailed()
	_, fire = guard.Observe("99999999")
	assert.True(t, fire)
}

func TestCepLookupGuardWithClient(t *testing.T) {
	var requests atomic.Int32
	client, server := newCepTestClient(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"street":"Rua A","neighborhood":"Centro","city":"Campinas","state":"SP"}`))
	})
	defer server.Close()

	var guard CepLookupGuard
	for _, typed := range []string{"13010", "13010-00", "13010-001", "13010-001", "13010001"} {
		if code, ok := guard.Observe(typed); ok {
			_, err := client.Lookup(context.Background(), code)
			require.NoError(t, err)
		}
	}

	assert.Equal(t, int32(1), requests.Load())
}
