// Package spreadsheet provides the client for the external mass-computation
// service. The service evaluates a calculation sheet from named inputs and
// returns named outputs; this adapter speaks that contract for the mass
// formula (volume, density -> mass).
package spreadsheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"unity-check/internal/errors"
)

// Client calls the spreadsheet evaluation service.
// It implements evaluator.MassCalculator.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-call timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a spreadsheet service client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the calculator identifier
func (c *Client) Name() string {
	return "spreadsheet"
}

// evaluateRequest is the wire format for a sheet evaluation
type evaluateRequest struct {
	Inputs []namedInput `json:"inputs"`
}

type namedInput struct {
	// Name matches a named cell in the service's input sheet
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// evaluateResponse is the wire format for a sheet evaluation result
type evaluateResponse struct {
	// Values holds the named cells of the output sheet
	Values map[string]decimal.Decimal `json:"values"`
}

// Mass evaluates the mass sheet for the given volume and density.
// Any transport, protocol or output-shape failure surfaces as an
// EXTERNAL_SERVICE_ERROR; there is no fallback to the local formula.
func (c *Client) Mass(ctx context.Context, volume, density decimal.Decimal) (decimal.Decimal, error) {
	if c.baseURL == "" {
		return decimal.Zero, errors.ExternalService("spreadsheet service URL not configured", nil)
	}

	payload := evaluateRequest{
		Inputs: []namedInput{
			{Name: "volume", Value: volume},
			{Name: "density", Value: density},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return decimal.Zero, errors.Internal("encoding spreadsheet request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/evaluate", bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, errors.ExternalService("building spreadsheet request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, errors.ExternalService("spreadsheet service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, errors.ExternalService(
			fmt.Sprintf("spreadsheet service returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg)), nil)
	}

	var result evaluateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Zero, errors.ExternalService("decoding spreadsheet response", err)
	}

	mass, ok := result.Values["mass"]
	if !ok {
		return decimal.Zero, errors.ExternalService("spreadsheet response missing 'mass' output", nil)
	}
	if mass.IsNegative() {
		return decimal.Zero, errors.ExternalService("spreadsheet returned negative mass", nil).
			WithContext("mass", mass.String())
	}

	return mass, nil
}
