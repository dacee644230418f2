package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// RatesReader serves the cached rate table, refreshed on the scheduled
// cadence in the background.
type RatesReader interface {
	Get(ctx context.Context) (models.RateTable, error)
	LastUpdated() time.Time
}

// RatesResponse represents the exchange rate table
// swagger:model RatesResponse
type RatesResponse struct {
	// Whether the table was served successfully
	// default: true
	Success bool `json:"success"`

	// Time of the last successful refresh, ISO-8601
	LastUpdated string `json:"lastUpdated"`

	// Countries present in the table
	Countries []string `json:"countries"`

	// Total rate entries across all countries and order types
	TotalRates int `json:"totalRates"`

	// The rate table: country -> order type -> currency -> rate
	Rates models.RateTable `json:"rates"`
}

// RatesErrorResponse represents an error response when fetching rates
// swagger:model RatesErrorResponse
type RatesErrorResponse struct {
	// Error message
	// default: Failed to retrieve exchange rates
	Error string `json:"error"`
}

// NewGetRatesHandler returns an HTTP handler serving the cached rate table.
// Stale data is served rather than blocking on a refresh.
// @Summary Get exchange rates
// @Description Returns the cached per-country, per-order-type rate table
// @Tags exchange
// @Produce json
// @Success 200 {object} handlers.RatesResponse "Exchange rates"
// @Failure 500 {object} handlers.RatesErrorResponse "Failed to retrieve exchange rates"
// @Router /exchange/rates [get]
func NewGetRatesHandler(svc RatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := svc.Get(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(RatesErrorResponse{
				Error: "Failed to retrieve exchange rates",
			})
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
		_ = json.NewEncoder(w).Encode(resp)
	}
}
