package walletservice

import (
	"context"
	"errors"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/pg"
	"go.uber.org/zap"
)

type WalletRepo interface {
	GetUserWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetUserWalletForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	CreateUserWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	UpdateUserWallet(ctx context.Context, userID int, balance int64) (*domain.Wallet, error)
}

type TransactionRepo interface {
	CreateTransaction(ctx context.Context, txn *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type Service struct {
	walletRepo WalletRepo
	txnRepo    TransactionRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, txnRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		txManager:  txManager,
	}
}

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInvalidAmount     = errors.New("transaction amount must be positive")
	ErrUnknownTxnType    = errors.New("unknown transaction type")
)

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetUserWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.CreateUserWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	txns, err := s.txnRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

// ApplyTransaction records a ledger entry and moves the balance in one
// database transaction. The wallet row is locked for the duration, so two
// concurrent debits of the same wallet cannot lose an update. Debits that
// would take the balance below zero fail with ErrInsufficientFunds and leave
// both the balance and the log untouched.
func (s *Service) ApplyTransaction(ctx context.Context, userID int, amount int64, currency, txnType string) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var debit bool
	switch txnType {
	case domain.TxnTypePayment, domain.TxnTypeFine:
		debit = true
	case domain.TxnTypeTopUp, domain.TxnTypeRefund:
		debit = false
	default:
		return nil, ErrUnknownTxnType
	}

	var txn *domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetUserWalletForUpdate(ctx, userID)
		if err != nil {
			zap.L().Error("failed to lock wallet", zap.Error(err))
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		newBalance := wallet.Balance + amount
		if debit {
			if wallet.Balance < amount {
				return ErrInsufficientFunds
			}
			newBalance = wallet.Balance - amount
		}

		txn = &domain.WalletTransaction{
			UserID:    userID,
			Amount:    amount,
			Currency:  currency,
			Type:      txnType,
			Status:    domain.TxnStatusCompleted,
			CreatedAt: time.Now(),
		}
		if _, err := s.txnRepo.CreateTransaction(ctx, txn); err != nil {
			zap.L().Error("failed to create transaction record", zap.Error(err))
			return err
		}

		if _, err := s.walletRepo.UpdateUserWallet(ctx, userID, newBalance); err != nil {
			zap.L().Error("failed to update wallet balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}
