package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	// ErrQuoteCreationFailed is returned when the quote request itself fails.
	ErrQuoteCreationFailed = errors.New("quote creation failed")
	// ErrMissingQuoteID is returned when the quote request succeeded but the
	// response carried no quote id. Kept distinct from ErrQuoteCreationFailed
	// so callers can message the two differently.
	ErrMissingQuoteID = errors.New("quote response has no quote id")
	// ErrTransferCreationFailed is returned when the transfer request fails.
	ErrTransferCreationFailed = errors.New("transfer creation failed")
	// ErrFlowInProgress is returned when a creation flow is started while
	// another one is still pending on the same machine.
	ErrFlowInProgress = errors.New("another payment flow is in progress")
	// ErrInvalidStep is returned for a transition signal that does not match
	// the current step.
	ErrInvalidStep = errors.New("invalid step for requested transition")
)

// QuoteTransferCreator chains the two provider calls: create quote, then
// create transfer against the quote id.
type QuoteTransferCreator interface {
	CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
	CreateTransfer(ctx context.Context, req models.TransferRequest) (*models.Transfer, error)
}

// TransferSaver persists a created transfer to the ledger.
type TransferSaver interface {
	Save(ctx context.Context, transfer models.TransferDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PaymentService drives one buy/pay/withdraw creation attempt through
// idle -> creating-quote -> initiating-transfer -> opening-wallet -> completed.
// Only one creation flow may be active per instance; steps are strictly
// ordered and a step is recorded before any financial side effect is
// attempted.
type PaymentService struct {
	provider    QuoteTransferCreator
	transfers   TransferSaver
	kafkaWriter KafkaWriter

	mu         sync.Mutex
	step       models.PaymentStep
	busy       bool
	transferID string
}

// NewPaymentService creates a new PaymentService in the idle step.
func NewPaymentService(
	provider QuoteTransferCreator,
	transfers TransferSaver,
	kafkaWriter KafkaWriter,
) *PaymentService {
	return &PaymentService{
		provider:    provider,
		transfers:   transfers,
		kafkaWriter: kafkaWriter,
		step:        models.StepIdle,
	}
}

// Step returns the current step of the machine.
func (s *PaymentService) Step() models.PaymentStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *PaymentService) setStep(step models.PaymentStep) {
	s.mu.Lock()
	s.step = step
	s.mu.Unlock()
}

// StartOrder runs the sequential two-call protocol: the quote must complete
// and yield a quote id before the transfer is attempted, and the transfer
// payload is built only from the quote output plus the caller-supplied
// recipient fields. On success the machine is left in opening-wallet awaiting
// CompleteWallet. Any failed step surfaces its error and moves the machine to
// error; nothing is retried automatically.
func (s *PaymentService) StartOrder(ctx context.Context, quoteReq models.QuoteRequest, recipient models.Recipient) (transferID string, err error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		logger.Log.Warnw("rejected concurrent flow start", "step", s.step)
		return "", ErrFlowInProgress
	}
	s.busy = true
	s.step = models.StepCreatingQuote
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		if err != nil {
			s.step = models.StepError
		}
		s.mu.Unlock()
	}()

	quote, qerr := s.provider.CreateQuote(ctx, quoteReq)
	if qerr != nil {
		logger.Log.Errorw("failed to create quote", "order_type", quoteReq.OrderType, "error", qerr)
		return "", fmt.Errorf("%w: %v", ErrQuoteCreationFailed, qerr)
	}
	if quote.QuoteID == "" {
		logger.Log.Errorw("quote created without quote id", "order_type", quoteReq.OrderType)
		return "", ErrMissingQuoteID
	}
	if ctx.Err() != nil {
		// caller went away while quoting; the quote is single-use and simply dropped
		return "", ctx.Err()
	}

	s.setStep(models.StepInitiatingTransfer)

	transferReq := models.TransferRequest{
		QuoteID:       quote.QuoteID,
		AccountName:   recipient.AccountName,
		AccountNumber: recipient.AccountNumber,
		RequestType:   recipient.RequestType,
	}
	if recipient.BusinessNumber != "" {
		transferReq.BusinessNumber = recipient.BusinessNumber
	}

	transfer, terr := s.provider.CreateTransfer(ctx, transferReq)
	if terr != nil {
		logger.Log.Errorw("failed to create transfer", "quote_id", quote.QuoteID, "error", terr)
		return "", fmt.Errorf("%w: %v", ErrTransferCreationFailed, terr)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	s.mu.Lock()
	s.step = models.StepOpeningWallet
	s.transferID = transfer.TransferID
	s.mu.Unlock()

	row := models.TransferDB{
		TransferID:    transfer.TransferID,
		QuoteID:       quote.QuoteID,
		AccountName:   recipient.AccountName,
		AccountNumber: recipient.AccountNumber,
		RequestType:   recipient.RequestType,
		Status:        transfer.Status,
	}
	if recipient.BusinessNumber != "" {
		businessNumber := recipient.BusinessNumber
		row.BusinessNumber = &businessNumber
	}
	if row.Status == "" {
		row.Status = models.TransferInitiated
	}
	if err := s.transfers.Save(ctx, row); err != nil {
		// ledger is observability, not the source of truth; the flow goes on
		logger.Log.Errorw("failed to persist transfer", "transfer_id", transfer.TransferID, "error", err)
	}

	s.publishEvent(ctx, models.OrderEvent{
		EventID:    uuid.NewString(),
		TransferID: transfer.TransferID,
		Type:       models.EventOrderCreated,
		Step:       string(models.StepOpeningWallet),
		Timestamp:  time.Now().Unix(),
	})

	return transfer.TransferID, nil
}

// CompleteWallet signals that the wallet/on-chain interaction and its success
// callback both resolved. Valid only from opening-wallet.
func (s *PaymentService) CompleteWallet() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != models.StepOpeningWallet {
		return ErrInvalidStep
	}
	s.step = models.StepCompleted
	return nil
}

// TransferID returns the transfer id of the current attempt, empty when none.
func (s *PaymentService) TransferID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transferID
}

// Reset returns the machine to idle and discards any pending request state.
// Callable at any time.
func (s *PaymentService) Reset() {
	s.mu.Lock()
	s.step = models.StepIdle
	s.busy = false
	s.transferID = ""
	s.mu.Unlock()
}

// publishEvent publishes an order lifecycle event to Kafka.
func (s *PaymentService) publishEvent(ctx context.Context, event models.OrderEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
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
