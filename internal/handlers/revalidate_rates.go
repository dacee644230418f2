package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// RevalidateTokener defines only the methods needed by this handler.
type RevalidateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// RatesInvalidator drops the rate cache tag and refetches synchronously.
type RatesInvalidator interface {
	Invalidate(ctx context.Context) (models.RateTable, error)
	LastUpdated() time.Time
}

// RevalidateRatesErrorResponse represents an error response for revalidation
// swagger:model RevalidateRatesErrorResponse
type RevalidateRatesErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewRevalidateRatesHandler returns an HTTP handler for manual rate cache
// invalidation. The bearer check happens before any cache operation.
// @Summary Revalidate exchange rates
// @Description Drops the rate cache tag and returns the freshly computed table
// @Tags exchange
// @Produce json
// @Success 200 {object} handlers.RatesResponse "Fresh exchange rates"
// @Failure 401 {object} handlers.RevalidateRatesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.RevalidateRatesErrorResponse "Failed to refresh exchange rates"
// @Router /exchange/rates/revalidate [post]
// @Security BearerAuth
func NewRevalidateRatesHandler(
	svc RatesInvalidator,
	tokenGetter RevalidateTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RevalidateRatesErrorResponse{Error: "Unauthorized"})
			return
		}
		if err := tokenGetter.Validate(ctx, tokenStr); err != nil {
			logger.Log.Errorw("invalid revalidation token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RevalidateRatesErrorResponse{Error: "Unauthorized"})
			return
		}

		table, err := svc.Invalidate(ctx)
		if err != nil {
			logger.Log.Errorw("failed to revalidate rates", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RevalidateRatesErrorResponse{Error: "Failed to refresh exchange rates"})
			return
		}

		resp := RatesResponse{
			Success:     true,
			LastUpdated: svc.LastUpdated().Format(time.RFC3339),
			Countries:   table.Countries(),
			TotalRates:  table.Total(),
			Rates:       table,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
