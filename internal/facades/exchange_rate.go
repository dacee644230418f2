package facades

import (
	"context"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangeRatesGRPCFacade fetches upstream currency rates using gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetExchangeRates fetches all upstream rates and returns them as map[string]float32
func (f *ExchangeRatesGRPCFacade) GetExchangeRates(
	ctx context.Context,
) (map[string]float32, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	rates := make(map[string]float32, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = rate
	}

	return rates, nil
}
