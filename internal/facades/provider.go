package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// ProviderHTTPFacade implements quote creation, transfer creation and
// transfer status queries against the external settlement provider over HTTP.
type ProviderHTTPFacade struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewProviderHTTPFacade creates a new facade for the provider API.
func NewProviderHTTPFacade(baseURL, apiKey string) *ProviderHTTPFacade {
	return &ProviderHTTPFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProviderErrorResponse represents an error body returned by the provider API.
type ProviderErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderErrorResponse) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider api error: %s - %s", e.Code, e.Message)
	}
	return "unknown provider api error"
}

// CreateQuote requests a priced conversion offer from the provider.
func (f *ProviderHTTPFacade) CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	var quote models.Quote
	if err := f.do(ctx, http.MethodPost, "/v1/quotes", req, &quote); err != nil {
		logger.Log.Errorw("failed to create quote",
			"source", req.SourceCurrency, "target", req.TargetCurrency, "error", err)
		return nil, err
	}
	return &quote, nil
}

// CreateTransfer creates a transfer against a previously issued quote.
// The request must carry the quote id; the provider rejects transfers
// without one.
func (f *ProviderHTTPFacade) CreateTransfer(ctx context.Context, req models.TransferRequest) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := f.do(ctx, http.MethodPost, "/v1/transfers", req, &transfer); err != nil {
		logger.Log.Errorw("failed to create transfer", "quote_id", req.QuoteID, "error", err)
		return nil, err
	}
	return &transfer, nil
}

// GetTransferStatus rereads the current status of a transfer. Status is
// always taken from the provider, never guessed locally.
func (f *ProviderHTTPFacade) GetTransferStatus(ctx context.Context, transferID string) (*models.TransferStatus, error) {
	var status models.TransferStatus
	path := fmt.Sprintf("/v1/transfers/%s/status", transferID)
	if err := f.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		logger.Log.Warnw("failed to query transfer status", "transfer_id", transferID, "error", err)
		return nil, err
	}
	return &status, nil
}

// do issues one JSON request and decodes the response into out. Non-2xx
// responses are returned as *ProviderErrorResponse.
func (f *ProviderHTTPFacade) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &ProviderErrorResponse{}
		if err := json.Unmarshal(raw, apiErr); err != nil {
			return fmt.Errorf("provider returned status %d", resp.StatusCode)
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("malformed provider response: %w", err)
	}
	return nil
}
