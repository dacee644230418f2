package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// OrderStepReader reads the in-memory settlement step of a tracked order.
type OrderStepReader interface {
	Step(transferID string) (models.OrderStep, time.Time, bool)
}

// TransferGetter reads a transfer row from the ledger.
type TransferGetter interface {
	GetByTransferID(ctx context.Context, transferID string) (*models.TransferDB, error)
}

// OrderStatusResponse represents the current view of one order
// swagger:model OrderStatusResponse
type OrderStatusResponse struct {
	// Transfer id
	TransferID string `json:"transfer_id"`

	// Settlement step: Processing, PaymentCompleted or PaymentFailed
	Step string `json:"step"`

	// Last polled provider status
	Status string `json:"status,omitempty"`

	// On-chain transaction hash, once settled
	TransactionHash string `json:"transaction_hash,omitempty"`

	// Processing session start time, ISO-8601
	ProcessingStartedAt string `json:"processing_started_at,omitempty"`
}

// OrderStatusErrorResponse represents an error response for order status
// swagger:model OrderStatusErrorResponse
type OrderStatusErrorResponse struct {
	// Error message
	// default: Order not found
	Error string `json:"error"`
}

// NewOrderStatusHandler returns an HTTP handler reporting where a transaction
// is right now: live tracking state when present, ledger state otherwise.
// @Summary Get order status
// @Description Returns the current settlement step and last known transfer status
// @Tags order
// @Produce json
// @Param transferID path string true "Transfer ID"
// @Success 200 {object} handlers.OrderStatusResponse "Order status"
// @Failure 404 {object} handlers.OrderStatusErrorResponse "Order not found"
// @Router /order/{transferID} [get]
// @Security BearerAuth
func NewOrderStatusHandler(
	orders OrderStepReader,
	transfers TransferGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		transferID := chi.URLParam(r, "transferID")

		resp := OrderStatusResponse{TransferID: transferID}

		step, startedAt, tracked := orders.Step(transferID)
		if tracked {
			resp.Step = string(step)
			resp.ProcessingStartedAt = startedAt.Format(time.RFC3339)
		}

		row, err := transfers.GetByTransferID(ctx, transferID)
		if err != nil {
			logger.Log.Errorw("failed to read transfer", "transfer_id", transferID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OrderStatusErrorResponse{Error: "Internal server error"})
			return
		}
		if row != nil {
			resp.Status = row.Status
			if row.TransactionHash != nil {
				resp.TransactionHash = *row.TransactionHash
			}
			if !tracked {
				// nothing in flight: derive the settlement step from the ledger
				switch row.Status {
				case models.TransferComplete:
					resp.Step = string(models.OrderStepPaymentCompleted)
				case models.TransferFailed:
					resp.Step = string(models.OrderStepPaymentFailed)
				default:
					resp.Step = string(models.OrderStepProcessing)
				}
			}
		}

		if !tracked && row == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(OrderStatusErrorResponse{Error: "Order not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
