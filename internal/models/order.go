package models

import "time"

// Request types accepted by the transfer provider.
const (
	RequestTypeBill   = "bill"
	RequestTypeTill   = "till"
	RequestTypePayout = "payout"
)

// Transfer statuses reported by the provider status endpoint.
// TransferComplete and TransferFailed are terminal; everything else is pending.
const (
	TransferInitiated  = "TransferInitiated"
	TransferProcessing = "TransferProcessing"
	TransferComplete   = "TransferComplete"
	TransferFailed     = "TransferFailed"
)

// IsTerminalStatus reports whether no further status change is expected.
func IsTerminalStatus(status string) bool {
	return status == TransferComplete || status == TransferFailed
}

// PaymentStep is the state of one buy/pay/withdraw creation attempt.
// It is owned by the payment service and never persisted.
type PaymentStep string

const (
	StepIdle               PaymentStep = "idle"
	StepCreatingQuote      PaymentStep = "creating-quote"
	StepInitiatingTransfer PaymentStep = "initiating-transfer"
	StepOpeningWallet      PaymentStep = "opening-wallet"
	StepCompleted          PaymentStep = "completed"
	StepError              PaymentStep = "error"
)

// OrderStep tracks transfer settlement, as opposed to transfer creation.
type OrderStep string

const (
	OrderStepProcessing       OrderStep = "Processing"
	OrderStepPaymentCompleted OrderStep = "PaymentCompleted"
	OrderStepPaymentFailed    OrderStep = "PaymentFailed"
)

// QuoteRequest is the payload for the provider quote endpoint.
type QuoteRequest struct {
	SourceCurrency string  `json:"sourceCurrency"`
	TargetCurrency string  `json:"targetCurrency"`
	SourceAmount   float64 `json:"sourceAmount"`
	Country        string  `json:"country"`
	OrderType      string  `json:"orderType"`
}

// Quote is a priced, single-use conversion offer returned by the provider.
// It is consumed exactly once by a transfer request and never mutated.
type Quote struct {
	QuoteID        string  `json:"quoteId"`
	SourceCurrency string  `json:"sourceCurrency"`
	TargetCurrency string  `json:"targetCurrency"`
	SourceAmount   float64 `json:"sourceAmount"`
	TargetAmount   float64 `json:"targetAmount"`
}

// Recipient carries the caller-supplied account fields for a transfer.
type Recipient struct {
	AccountName    string
	AccountNumber  string
	RequestType    string
	BusinessNumber string
}

// TransferRequest is the payload for the provider transfer endpoint.
// BusinessNumber is serialized only when the caller supplied a non-empty
// value; an empty field must never go over the wire.
type TransferRequest struct {
	QuoteID        string `json:"quoteId"`
	AccountName    string `json:"accountName"`
	AccountNumber  string `json:"accountNumber"`
	RequestType    string `json:"requestType"`
	BusinessNumber string `json:"businessNumber,omitempty"`
}

// Transfer is a payment/payout attempt created against a quote.
type Transfer struct {
	TransferID string `json:"transferId"`
	Status     string `json:"status"`
}

// TransferStatus is one status snapshot from the provider. TransactionHash
// is set once the on-chain leg has settled.
type TransferStatus struct {
	TransferID      string `json:"transferId"`
	Status          string `json:"status"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

// TransferDB is a transfer ledger row.
type TransferDB struct {
	TransferID      string    `db:"transfer_id"`
	QuoteID         string    `db:"quote_id"`
	AccountName     string    `db:"account_name"`
	AccountNumber   string    `db:"account_number"`
	RequestType     string    `db:"request_type"`
	BusinessNumber  *string   `db:"business_number"`
	Status          string    `db:"status"`
	TransactionHash *string   `db:"transaction_hash"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
