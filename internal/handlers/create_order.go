package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/services"
)

// OrderStarter defines the interface that the payment service must implement.
type OrderStarter interface {
	StartOrder(ctx context.Context, quoteReq models.QuoteRequest, recipient models.Recipient) (string, error)
}

// ProcessingStarter begins settlement tracking for a created transfer.
type ProcessingStarter interface {
	Start(ctx context.Context, transferID string) time.Time
}

// CreateOrderRequest represents the JSON body for starting an order
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	// Source currency
	// required: true
	// default: KES
	SourceCurrency string `json:"source_currency"`

	// Target currency
	// required: true
	// default: USDC
	TargetCurrency string `json:"target_currency"`

	// Amount in source currency
	// required: true
	// default: 1000.0
	Amount float64 `json:"amount"`

	// Country code
	// required: true
	// default: KE
	Country string `json:"country"`

	// Order type: buy or sell
	// required: true
	// default: buy
	OrderType string `json:"order_type"`

	// Recipient account name
	// required: true
	AccountName string `json:"account_name"`

	// Recipient account number
	// required: true
	AccountNumber string `json:"account_number"`

	// Request type: bill, till or payout
	// required: true
	// default: payout
	RequestType string `json:"request_type"`

	// Business number, only for bill payments
	BusinessNumber string `json:"business_number,omitempty"`
}

// CreateOrderResponse represents a successfully started order
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	// Transfer id assigned by the provider
	TransferID string `json:"transfer_id"`

	// Current payment step
	Step string `json:"step"`

	// Processing session start time, ISO-8601
	ProcessingStartedAt string `json:"processing_started_at"`
}

// CreateOrderErrorResponse represents an error response for order creation
// swagger:model CreateOrderErrorResponse
type CreateOrderErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewCreateOrderHandler returns an HTTP handler that starts one order
// attempt: quote, transfer, then settlement tracking against the returned
// transfer id.
// @Summary Start an order
// @Description Creates a quote, chains a transfer to it and starts settlement tracking
// @Tags order
// @Accept json
// @Produce json
// @Param request body handlers.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} handlers.CreateOrderResponse "Order started"
// @Failure 400 {object} handlers.CreateOrderErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.CreateOrderErrorResponse "Another flow in progress"
// @Failure 422 {object} handlers.CreateOrderErrorResponse "Quote response missing quote id"
// @Failure 502 {object} handlers.CreateOrderErrorResponse "Provider error"
// @Router /order [post]
// @Security BearerAuth
func NewCreateOrderHandler(
	svc OrderStarter,
	orders ProcessingStarter,
) http.HandlerFunc {
	validRequestTypes := map[string]struct{}{
		models.RequestTypeBill:   {},
		models.RequestTypeTill:   {},
		models.RequestTypePayout: {},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create order request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Amount <= 0 {
			logger.Log.Warnw("invalid order amount", "amount", req.Amount)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Invalid amount"})
			return
		}
		if _, ok := validRequestTypes[req.RequestType]; !ok {
			logger.Log.Warnw("invalid request type", "request_type", req.RequestType)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Invalid request type"})
			return
		}
		if req.AccountName == "" || req.AccountNumber == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Missing recipient fields"})
			return
		}

		quoteReq := models.QuoteRequest{
			SourceCurrency: req.SourceCurrency,
			TargetCurrency: req.TargetCurrency,
			SourceAmount:   req.Amount,
			Country:        req.Country,
			OrderType:      req.OrderType,
		}
		recipient := models.Recipient{
			AccountName:    req.AccountName,
			AccountNumber:  req.AccountNumber,
			RequestType:    req.RequestType,
			BusinessNumber: req.BusinessNumber,
		}

		transferID, err := svc.StartOrder(ctx, quoteReq, recipient)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFlowInProgress):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Another order is in progress"})
			case errors.Is(err, services.ErrMissingQuoteID):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Quote response missing quote id"})
			case errors.Is(err, services.ErrQuoteCreationFailed),
				errors.Is(err, services.ErrTransferCreationFailed):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Provider error"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateOrderErrorResponse{Error: "Internal server error"})
			}
			return
		}

		startedAt := orders.Start(ctx, transferID)

		resp := CreateOrderResponse{
			TransferID:          transferID,
			Step:                string(models.StepOpeningWallet),
			ProcessingStartedAt: startedAt.Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}
