package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrOrderNotFound is returned when no tracked order exists for a transfer id.
var ErrOrderNotFound = errors.New("order not found")

// SessionStore persists processing start times across restarts.
type SessionStore interface {
	Begin(ctx context.Context, sessionKey string) time.Time
	Clear(ctx context.Context, sessionKey string) error
}

// TransferSettler records polled settlement results in the ledger.
type TransferSettler interface {
	UpdateStatus(ctx context.Context, transferID, status string, transactionHash *string) error
}

// Watcher polls a transfer until a terminal status or cancellation.
type Watcher interface {
	Watch(ctx context.Context, transferID string) (*models.TransferStatus, error)
}

type orderState struct {
	step      models.OrderStep
	startedAt time.Time
	cancel    context.CancelFunc
}

// OrderService composes the session store and the status poller into the
// end-to-end processing experience: start timer, poll status, react to
// terminal states, allow cancel.
type OrderService struct {
	poller      Watcher
	sessions    SessionStore
	transfers   TransferSettler
	kafkaWriter KafkaWriter

	mu     sync.Mutex
	orders map[string]*orderState
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	poller Watcher,
	sessions SessionStore,
	transfers TransferSettler,
	kafkaWriter KafkaWriter,
) *OrderService {
	return &OrderService{
		poller:      poller,
		sessions:    sessions,
		transfers:   transfers,
		kafkaWriter: kafkaWriter,
		orders:      make(map[string]*orderState),
	}
}

// Start begins (or resumes) processing for transferID and returns the session
// start time. Re-entering with the same transfer id returns the original
// start time; tracking itself runs until a terminal status or Cancel, not for
// the lifetime of the caller's request.
func (s *OrderService) Start(ctx context.Context, transferID string) time.Time {
	s.mu.Lock()
	if state, ok := s.orders[transferID]; ok {
		s.mu.Unlock()
		return state.startedAt
	}

	startedAt := s.sessions.Begin(ctx, transferID)
	watchCtx, cancel := context.WithCancel(context.Background())
	s.orders[transferID] = &orderState{
		step:      models.OrderStepProcessing,
		startedAt: startedAt,
		cancel:    cancel,
	}
	s.mu.Unlock()

	logger.Log.Infow("settlement tracking started", "transfer_id", transferID)
	go s.track(watchCtx, transferID)

	return startedAt
}

// track waits for the poller's terminal result and applies it. A result that
// arrives after Cancel removed the order is dropped without any state change.
func (s *OrderService) track(ctx context.Context, transferID string) {
	status, err := s.poller.Watch(ctx, transferID)
	if err != nil {
		logger.Log.Infow("settlement tracking stopped", "transfer_id", transferID, "error", err)
		return
	}

	step := models.OrderStepPaymentCompleted
	if status.Status == models.TransferFailed {
		step = models.OrderStepPaymentFailed
	}

	s.mu.Lock()
	state, ok := s.orders[transferID]
	if !ok {
		s.mu.Unlock()
		logger.Log.Infow("discarded settlement result for cancelled order", "transfer_id", transferID)
		return
	}
	state.step = step
	s.mu.Unlock()

	var hash *string
	if status.TransactionHash != "" {
		transactionHash := status.TransactionHash
		hash = &transactionHash
	}
	if err := s.transfers.UpdateStatus(ctx, transferID, status.Status, hash); err != nil {
		logger.Log.Errorw("failed to record settlement", "transfer_id", transferID, "error", err)
	}

	if err := s.sessions.Clear(ctx, transferID); err != nil {
		logger.Log.Errorw("failed to clear processing session", "transfer_id", transferID, "error", err)
	}

	s.publishSettled(ctx, transferID, step)

	logger.Log.Infow("order settled", "transfer_id", transferID, "step", step)
}

// Cancel stops settlement tracking for transferID and clears its processing
// session. An in-flight status request may still complete; its result is
// discarded on arrival.
func (s *OrderService) Cancel(ctx context.Context, transferID string) error {
	s.mu.Lock()
	state, ok := s.orders[transferID]
	if ok {
		state.cancel()
		delete(s.orders, transferID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrOrderNotFound
	}

	if err := s.sessions.Clear(ctx, transferID); err != nil {
		logger.Log.Errorw("failed to clear processing session on cancel", "transfer_id", transferID, "error", err)
	}

	logger.Log.Infow("settlement tracking cancelled", "transfer_id", transferID)
	return nil
}

// Step returns the current settlement step and session start time for a
// tracked order.
func (s *OrderService) Step(transferID string) (models.OrderStep, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.orders[transferID]
	if !ok {
		return "", time.Time{}, false
	}
	return state.step, state.startedAt, true
}

// publishSettled publishes an order settlement event to Kafka.
func (s *OrderService) publishSettled(ctx context.Context, transferID string, step models.OrderStep) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transfer_id", transferID)
		return
	}

	event := models.OrderEvent{
		EventID:    uuid.NewString(),
		TransferID: transferID,
		Type:       models.EventOrderSettled,
		Step:       string(step),
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal order event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransferID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish order event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Order event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}
