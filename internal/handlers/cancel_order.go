package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/services"
)

// OrderCanceler stops settlement tracking for a transfer.
type OrderCanceler interface {
	Cancel(ctx context.Context, transferID string) error
}

// PaymentResetter returns the payment state machine to idle.
type PaymentResetter interface {
	Reset()
}

// CancelOrderResponse represents a successful cancellation
// swagger:model CancelOrderResponse
type CancelOrderResponse struct {
	// Success message
	// default: Order cancelled
	Message string `json:"message"`
}

// CancelOrderErrorResponse represents an error response for cancellation
// swagger:model CancelOrderErrorResponse
type CancelOrderErrorResponse struct {
	// Error message
	// default: Order not found
	Error string `json:"error"`
}

// NewCancelOrderHandler returns an HTTP handler that cancels settlement
// tracking, clears the processing session and resets the payment machine.
// @Summary Cancel an order
// @Description Stops polling for the transfer and discards pending flow state
// @Tags order
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} handlers.CancelOrderResponse "Order cancelled"
// @Failure 404 {object} handlers.CancelOrderErrorResponse "Order not found"
// @Router /order/{transferID}/cancel [post]
// @Security BearerAuth
func NewCancelOrderHandler(
	orders OrderCanceler,
	payment PaymentResetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		transferID := chi.URLParam(r, "transferID")

		if err := orders.Cancel(ctx, transferID); err != nil {
			if errors.Is(err, services.ErrOrderNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CancelOrderErrorResponse{Error: "Order not found"})
				return
			}
			logger.Log.Errorw("failed to cancel order", "transfer_id", transferID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CancelOrderErrorResponse{Error: "Internal server error"})
			return
		}

		payment.Reset()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CancelOrderResponse{Message: "Order cancelled"})
	}
}
