package transactionrepo

import (
	"context"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateTransaction appends a ledger entry. Entries are immutable, there is
// no update path.
func (r *Repository) CreateTransaction(ctx context.Context, txn *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
		INSERT INTO wallet_transactions (user_id, amount, currency, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, txn.UserID, txn.Amount, txn.Currency, txn.Type, txn.Status, txn.CreatedAt).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save wallet transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, user_id, amount, currency, type, status, created_at
        FROM wallet_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		var txn domain.WalletTransaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Currency, &txn.Type, &txn.Status, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}
