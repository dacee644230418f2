package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// ErrNoTransferID is returned when polling is requested without a transfer id.
var ErrNoTransferID = errors.New("no transfer id to poll")

// DefaultPollInterval is the cadence of transfer status queries.
const DefaultPollInterval = 5 * time.Second

// TransferStatusReader queries the provider for the current transfer status.
type TransferStatusReader interface {
	GetTransferStatus(ctx context.Context, transferID string) (*models.TransferStatus, error)
}

// StatusPoller repeatedly queries transfer status at a fixed interval until
// a terminal status or cancellation.
type StatusPoller struct {
	provider TransferStatusReader
	interval time.Duration
}

// NewStatusPoller creates a poller; a non-positive interval falls back to
// DefaultPollInterval.
func NewStatusPoller(provider TransferStatusReader, interval time.Duration) *StatusPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &StatusPoller{provider: provider, interval: interval}
}

// Watch polls until the first terminal status and returns it. The stop
// predicate is evaluated before the next tick is scheduled, so no request is
// issued after a terminal status has been observed. Transient query failures
// are retried on the next tick. On cancellation the in-flight result, if any,
// is discarded and ctx.Err() is returned.
func (p *StatusPoller) Watch(ctx context.Context, transferID string) (*models.TransferStatus, error) {
	if transferID == "" {
		return nil, ErrNoTransferID
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		status, err := p.provider.GetTransferStatus(ctx, transferID)
		if ctx.Err() != nil {
			// result arrived after cancellation; discard without applying
			return nil, ctx.Err()
		}
		if err != nil {
			logger.Log.Warnw("transfer status query failed, retrying on next tick",
				"transfer_id", transferID, "error", err)
			continue
		}

		logger.Log.Infow("transfer status polled",
			"transfer_id", transferID, "status", status.Status)

		if models.IsTerminalStatus(status.Status) {
			return status, nil
		}
	}
}
