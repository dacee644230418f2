package models

// OrderEvent is published to Kafka on order lifecycle changes.
type OrderEvent struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	TransferID string `json:"transfer_id"` // TransferID is the transfer the event belongs to.
	Type       string `json:"type"`        // Type is the lifecycle event kind, e.g. "order_created" or "order_settled".
	Step       string `json:"step"`        // Step is the payment or settlement step at publish time.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the event occurred.
}

// Order event types.
const (
	EventOrderCreated = "order_created"
	EventOrderSettled = "order_settled"
)
