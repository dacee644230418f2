package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// RateCacheTag is the logical cache name for the exchange rate table.
const RateCacheTag = "exchange-rates"

// DefaultRatesRefreshInterval is the scheduled revalidation cadence.
const DefaultRatesRefreshInterval = 90 * time.Second

// buy/sell spread applied on top of the upstream mid rate
const orderTypeSpread = 0.005

// ErrRatesUnavailable is returned when no table is cached and the upstream
// fetch fails too.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// ExchangeRatesReader fetches current upstream rates.
type ExchangeRatesReader interface {
	GetExchangeRates(ctx context.Context) (map[string]float32, error)
}

// RateCache is the tag-addressable cache holding the whole rate table.
type RateCache interface {
	Get(ctx context.Context, tag string) (models.RateTable, error)
	Set(ctx context.Context, tag string, table models.RateTable) error
	Invalidate(ctx context.Context, tag string) error
}

// RateService serves the per-country, per-order-type rate table. The
// scheduled path serves cached data and refreshes in the background; the
// manual path drops the tag and refetches synchronously. A refresh either
// replaces the whole table or leaves the prior value in place.
type RateService struct {
	reader    ExchangeRatesReader
	cache     RateCache
	countries []string
	interval  time.Duration

	mu          sync.Mutex
	lastUpdated time.Time
}

// NewRateService creates a RateService for the supported country set; a
// non-positive interval falls back to DefaultRatesRefreshInterval.
func NewRateService(
	reader ExchangeRatesReader,
	cache RateCache,
	countries []string,
	interval time.Duration,
) *RateService {
	if interval <= 0 {
		interval = DefaultRatesRefreshInterval
	}
	return &RateService{
		reader:    reader,
		cache:     cache,
		countries: countries,
		interval:  interval,
	}
}

// Get returns the cached table, populating it on first request. Stale data
// is served as-is; freshness is the background refresher's job.
func (s *RateService) Get(ctx context.Context) (models.RateTable, error) {
	table, err := s.cache.Get(ctx, RateCacheTag)
	if err == nil && table != nil {
		return table, nil
	}

	table, err = s.refresh(ctx)
	if err != nil {
		logger.Log.Errorw("failed to populate rate table", "error", err)
		return nil, ErrRatesUnavailable
	}
	return table, nil
}

// Invalidate drops the cache tag and forces an immediate refetch, returning
// the freshly computed table. The tag is dropped only after a bearer check
// upstream; no cache operation happens for unauthorized callers.
func (s *RateService) Invalidate(ctx context.Context) (models.RateTable, error) {
	if err := s.cache.Invalidate(ctx, RateCacheTag); err != nil {
		logger.Log.Errorw("failed to invalidate rate cache", "error", err)
		return nil, err
	}

	table, err := s.refresh(ctx)
	if err != nil {
		logger.Log.Errorw("failed to refetch rate table after invalidation", "error", err)
		return nil, ErrRatesUnavailable
	}
	return table, nil
}

// LastUpdated returns the time of the last successful refresh.
func (s *RateService) LastUpdated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdated
}

// Run refreshes the table on the configured cadence until ctx is cancelled.
// Refresh failures keep the previously cached table.
func (s *RateService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("rate refresh loop stopped")
			return
		case <-ticker.C:
			if _, err := s.refresh(ctx); err != nil {
				logger.Log.Errorw("scheduled rate refresh failed, serving stale table", "error", err)
			}
		}
	}
}

// refresh fetches upstream rates, builds the full table for all supported
// countries and replaces the cached value.
func (s *RateService) refresh(ctx context.Context) (models.RateTable, error) {
	rates, err := s.reader.GetExchangeRates(ctx)
	if err != nil {
		return nil, err
	}

	table := make(models.RateTable, len(s.countries))
	for _, country := range s.countries {
		byOrderType := make(map[string]map[string]float64, 2)
		for orderType, spread := range map[string]float64{
			models.OrderTypeBuy:  1 + orderTypeSpread,
			models.OrderTypeSell: 1 - orderTypeSpread,
		} {
			entries := make(map[string]float64, len(rates))
			for currency, rate := range rates {
				entries[currency] = float64(rate) * spread
			}
			byOrderType[orderType] = entries
		}
		table[country] = byOrderType
	}

	if err := s.cache.Set(ctx, RateCacheTag, table); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	logger.Log.Infow("rate table refreshed", "countries", len(table), "total_rates", table.Total())
	return table, nil
}
