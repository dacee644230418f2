package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/services"
)

// WalletCompleter signals that the wallet/on-chain interaction resolved.
type WalletCompleter interface {
	CompleteWallet() error
}

// CompleteWalletResponse represents a successful completion signal
// swagger:model CompleteWalletResponse
type CompleteWalletResponse struct {
	// Success message
	// default: Payment completed
	Message string `json:"message"`
}

// CompleteWalletErrorResponse represents an error response for the signal
// swagger:model CompleteWalletErrorResponse
type CompleteWalletErrorResponse struct {
	// Error message
	// default: No wallet interaction pending
	Error string `json:"error"`
}

// NewCompleteWalletHandler returns an HTTP handler for the external signal
// that the wallet signing and its success callback both resolved.
// @Summary Signal wallet completion
// @Description Moves the payment machine from opening-wallet to completed
// @Tags order
// @Produce json
// @Success 200 {object} handlers.CompleteWalletResponse "Payment completed"
// @Failure 409 {object} handlers.CompleteWalletErrorResponse "No wallet interaction pending"
// @Router /order/wallet-complete [post]
// @Security BearerAuth
func NewCompleteWalletHandler(svc WalletCompleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CompleteWallet(); err != nil {
			if errors.Is(err, services.ErrInvalidStep) {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CompleteWalletErrorResponse{Error: "No wallet interaction pending"})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CompleteWalletErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CompleteWalletResponse{Message: "Payment completed"})
	}
}
