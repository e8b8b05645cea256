package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) GetUserWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetUserWalletForUpdate locks the wallet row for the rest of the enclosing
// transaction. Callers must run it through the TXManager.
func (r *Repository) GetUserWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock user wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) CreateUserWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance)
        VALUES ($1, 0)
        RETURNING id, user_id, balance
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance)
	if err != nil {
		zap.L().Error("failed to create user wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) UpdateUserWallet(ctx context.Context, userID int, balance int64) (*domain.Wallet, error) {
	var updated domain.Wallet
	query := `
		UPDATE wallets
		SET balance = $1
		WHERE user_id = $2
		RETURNING id, user_id, balance
	`
	row := r.db.QueryRow(ctx, query, balance, userID)
	err := row.Scan(&updated.ID, &updated.UserID, &updated.Balance)
	if err != nil {
		zap.L().Error("failed to update user wallet", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
