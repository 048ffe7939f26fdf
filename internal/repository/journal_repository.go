package repository

import (
	"context"

	"receiptchain/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// JournalRepository appends successful ledger writes for audit.
type JournalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewJournalRepository(db *pgxpool.Pool, logger *zap.Logger) *JournalRepository {
	return &JournalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *JournalRepository) Append(ctx context.Context, entry *models.JournalEntry) error {
	query := squirrel.Insert("ledger_journal").
		Columns("id", "operation", "reference_id", "transaction_hash", "block_number", "gas_used", "payload", "created_at").
		Values(entry.ID, entry.Operation, entry.ReferenceID, entry.TransactionHash, int64(entry.BlockNumber), int64(entry.GasUsed), []byte(entry.Payload), entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
