package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/logger"
	"github.com/sbilibin2017/gw-stablecoin-ramp/internal/models"
)

// TransferWriterRepository handles transfer ledger write operations
type TransferWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransferWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransferWriterRepository {
	return &TransferWriterRepository{db: db, txGetter: txGetter}
}

// Save inserts a transfer row on creation. A replayed insert for the same
// transfer id is a no-op.
func (r *TransferWriterRepository) Save(ctx context.Context, transfer models.TransferDB) error {
	query := `
		INSERT INTO transfers (transfer_id, quote_id, account_name, account_number, request_type, business_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (transfer_id) DO NOTHING
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query,
		transfer.TransferID, transfer.QuoteID,
		transfer.AccountName, transfer.AccountNumber,
		transfer.RequestType, transfer.BusinessNumber,
		transfer.Status,
	)

	// Log query, args, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transfer.TransferID, transfer.QuoteID, transfer.RequestType, transfer.Status},
		"error", err,
	)

	return err
}

// UpdateStatus records a polled status for a transfer, together with the
// transaction hash once the on-chain leg has settled. Status always comes
// from the provider, never from local state.
func (r *TransferWriterRepository) UpdateStatus(ctx context.Context, transferID, status string, transactionHash *string) error {
	query := `
		UPDATE transfers
		SET status = $2, transaction_hash = COALESCE($3, transaction_hash), updated_at = NOW()
		WHERE transfer_id = $1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, transferID, status, transactionHash)

	// Log query, args, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transferID, status},
		"error", err,
	)

	return err
}

// TransferReaderRepository handles transfer ledger read operations
type TransferReaderRepository struct {
	db *sqlx.DB
}

func NewTransferReaderRepository(db *sqlx.DB) *TransferReaderRepository {
	return &TransferReaderRepository{db: db}
}

// GetByTransferID retrieves one transfer row, or nil when none exists
func (r *TransferReaderRepository) GetByTransferID(ctx context.Context, transferID string) (*models.TransferDB, error) {
	const query = `
		SELECT transfer_id, quote_id, account_name, account_number, request_type, business_number, status, transaction_hash, created_at, updated_at
		FROM transfers
		WHERE transfer_id = $1
	`

	var rows []models.TransferDB
	err := r.db.SelectContext(ctx, &rows, query, transferID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transferID},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
