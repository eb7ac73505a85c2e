package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Errors a CEP lookup can surface to the form. Anything else is a
// transport or upstream failure.
var (
	ErrInvalidCep  = errors.New("cep must have exactly 8 digits")
	ErrCepNotFound = errors.New("cep not found")
)

// AddressResult is the address returned by the postal code lookup service
// (BrasilAPI response shape).
type AddressResult struct {
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CepClient queries the external postal code lookup service.
type CepClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewCepClient builds a client for the lookup endpoint configured in
// CEP_API_URL, defaulting to BrasilAPI.
func NewCepClient() *CepClient {
	baseURL := os.Getenv("CEP_API_URL")
	if baseURL == "" {
		baseURL = "https://brasilapi.com.br/api/cep/v1"
	}
	return &CepClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup resolves an 8-digit postal code to an address. A 404 from the
// service or a response without a city both count as not found, so the
// form can fall back to manual entry.
func (c *CepClient) Lookup(ctx context.Context, cep string) (*AddressResult, error) {
	clean := Digits(cep)
	if len(clean) != 8 {
		return nil, ErrInvalidCep
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/"+clean, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cep lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCepNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cep lookup returned status %d", resp.StatusCode)
	}

	var address AddressResult
	if err := json.NewDecoder(resp.Body).Decode(&address); err != nil {
		return nil, fmt.Errorf("decoding cep response: %w", err)
	}
	if address.City == "" {
		return nil, ErrCepNotFound
	}

	return &address, nil
}

// CepLookupGuard tracks the last postal code already looked up so that the
// same 8-digit value never triggers a second request. It mirrors the
// checkout form behavior: a lookup fires only when the cleaned code reaches
// exactly 8 digits and differs from the last one searched; editing the
// field below 8 digits resets the marker.
type CepLookupGuard struct {
	lastSearched string
}

// Observe reports whether a lookup should fire for the current field
// value, returning the cleaned 8-digit code when it should.
func (g *CepLookupGuard) Observe(value string) (string, bool) {
	clean := Digits(value)
	if len(clean) < 8 {
		g.lastSearched = ""
		return "", false
	}
	if len(clean) != 8 || clean == g.lastSearched {
		return "", false
	}
	g.lastSearched = clean
	return clean, true
}

// MarkFailed resets the marker after a failed lookup so the same code can
// be retried.
func (g *CepLookupGuard) MarkFailed() {
	g.lastSearched = ""
}
