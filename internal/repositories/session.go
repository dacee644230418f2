package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
)

const (
	sessionStartPrefix = "processing-start"
	sessionIDPrefix    = "processing-id"
)

// SwapSessionKey is the fixed session key used by swap flows; buy and
// withdraw flows key their session by transfer id.
const SwapSessionKey = "swap"

// ProcessingSessionRepository persists processing start times in Redis so a
// countdown survives process restarts. Entries carry no TTL: a session lives
// until explicitly cleared.
type ProcessingSessionRepository struct {
	client *redis.Client
}

// NewProcessingSessionRepository creates a new repository instance
func NewProcessingSessionRepository(client *redis.Client) *ProcessingSessionRepository {
	return &ProcessingSessionRepository{client: client}
}

// Begin returns the stored start time for sessionKey if one exists under the
// same key, otherwise writes now and returns it. Re-entering with the same
// key therefore resumes the original countdown. Storage failures degrade to
// a fresh timer and are never propagated.
func (r *ProcessingSessionRepository) Begin(ctx context.Context, sessionKey string) time.Time {
	startKey := fmt.Sprintf("%s-%s", sessionStartPrefix, sessionKey)
	idKey := fmt.Sprintf("%s-%s", sessionIDPrefix, sessionKey)

	storedID, err := r.client.Get(ctx, idKey).Result()
	if err == nil && storedID == sessionKey {
		val, getErr := r.client.Get(ctx, startKey).Result()
		if getErr == nil {
			if ms, parseErr := strconv.ParseInt(val, 10, 64); parseErr == nil {
				logger.Log.Infow("resumed processing session",
					"session_key", sessionKey, "started_at_ms", ms)
				return time.UnixMilli(ms)
			}
		}
	} else if err != nil && err != redis.Nil {
		logger.Log.Errorw("session store unavailable, starting fresh timer",
			"session_key", sessionKey, "error", err)
	}

	now := time.Now()
	if err := r.client.Set(ctx, startKey, strconv.FormatInt(now.UnixMilli(), 10), 0).Err(); err != nil {
		logger.Log.Errorw("failed to persist session start", "session_key", sessionKey, "error", err)
		return now
	}
	if err := r.client.Set(ctx, idKey, sessionKey, 0).Err(); err != nil {
		logger.Log.Errorw("failed to persist session id", "session_key", sessionKey, "error", err)
	}
	return now
}

// Current returns the stored start time for sessionKey, or nil when no
// session exists or storage is unavailable.
func (r *ProcessingSessionRepository) Current(ctx context.Context, sessionKey string) *time.Time {
	startKey := fmt.Sprintf("%s-%s", sessionStartPrefix, sessionKey)
	idKey := fmt.Sprintf("%s-%s", sessionIDPrefix, sessionKey)

	storedID, err := r.client.Get(ctx, idKey).Result()
	if err != nil || storedID != sessionKey {
		if err != nil && err != redis.Nil {
			logger.Log.Errorw("session store unavailable", "session_key", sessionKey, "error", err)
		}
		return nil
	}

	val, err := r.client.Get(ctx, startKey).Result()
	if err != nil {
		return nil
	}
	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil
	}
	started := time.UnixMilli(ms)
	return &started
}

// Clear removes exactly sessionKey's start/id pair. An empty sessionKey
// removes the legacy unscoped pair kept for backward compatibility with the
// prior single-session format.
func (r *ProcessingSessionRepository) Clear(ctx context.Context, sessionKey string) error {
	startKey := sessionStartPrefix
	idKey := sessionIDPrefix
	if sessionKey != "" {
		startKey = fmt.Sprintf("%s-%s", sessionStartPrefix, sessionKey)
		idKey = fmt.Sprintf("%s-%s", sessionIDPrefix, sessionKey)
	}

	err := r.client.Del(ctx, startKey, idKey).Err()

	logger.Log.Infow(
		"keys", []string{startKey, idKey},
		"result", "deleted",
		"error", err,
	)

	return err
}
