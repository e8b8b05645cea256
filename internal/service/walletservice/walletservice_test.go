package walletservice

import (
	"context"
	"errors"
	"testing"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWalletRepo, *MockTransactionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	walletRepo := NewMockWalletRepo(ctrl)
	txnRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(walletRepo, txnRepo, txManager)
	defer ctrl.Finish()
	return service, walletRepo, txnRepo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestGetWallet(t *testing.T) {
	service, walletRepo, _, _ := NewMock(t)

	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedWallet *domain.Wallet
		expectedError  error
	}{
		{
			name:   "Retrieve wallet successfully",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetUserWallet(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:  1,
					Balance: 42,
				}, nil)
			},
			expectedWallet: &domain.Wallet{UserID: 1, Balance: 42},
			expectedError:  nil,
		},
		{
			name:   "Wallet does not exist",
			userID: 2,
			prepareMock: func() {
				walletRepo.EXPECT().GetUserWallet(gomock.Any(), 2).Return(nil, nil)
			},
			expectedWallet: nil,
			expectedError:  ErrWalletNotFound,
		},
		{
			name:   "Error retrieving wallet",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().GetUserWallet(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedWallet: nil,
			expectedError:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			wallet, err := service.GetWallet(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedWallet, wallet)
			}
		})
	}
}

func TestCreateWallet(t *testing.T) {
	service, walletRepo, _, _ := NewMock(t)

	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedResult *domain.Wallet
		expectedError  error
	}{
		{
			name:   "Successful wallet creation",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().CreateUserWallet(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:  1,
					Balance: 0,
				}, nil)
			},
			expectedResult: &domain.Wallet{UserID: 1, Balance: 0},
			expectedError:  nil,
		},
		{
			name:   "Error creating wallet",
			userID: 1,
			prepareMock: func() {
				walletRepo.EXPECT().CreateUserWallet(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedResult: nil,
			expectedError:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			wallet, err := service.CreateWallet(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, wallet)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	service, _, txnRepo, _ := NewMock(t)

	txns := []domain.WalletTransaction{
		{UserID: 1, Amount: 1, Currency: "TOKEN", Type: domain.TxnTypePayment, Status: domain.TxnStatusCompleted},
		{UserID: 1, Amount: 10, Currency: "TOKEN", Type: domain.TxnTypeFine, Status: domain.TxnStatusCompleted},
	}

	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedResult []domain.WalletTransaction
		expectedError  error
	}{
		{
			name:   "Retrieve transactions successfully",
			userID: 1,
			prepareMock: func() {
				txnRepo.EXPECT().GetTransactionsByUserID(gomock.Any(), 1).Return(txns, nil)
			},
			expectedResult: txns,
			expectedError:  nil,
		},
		{
			name:   "Error retrieving transactions",
			userID: 1,
			prepareMock: func() {
				txnRepo.EXPECT().GetTransactionsByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedResult: nil,
			expectedError:  errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.GetTransactions(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestApplyTransaction(t *testing.T) {
	service, walletRepo, txnRepo, txManager := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		amount        int64
		txnType       string
		prepareMock   func()
		expectedError error
	}{
		{
			name:    "Successful debit",
			userID:  1,
			amount:  10,
			txnType: domain.TxnTypeFine,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetUserWalletForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Balance: 50}, nil)
				txnRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&domain.WalletTransaction{}, nil)
				walletRepo.EXPECT().UpdateUserWallet(gomock.Any(), 1, int64(40)).Return(&domain.Wallet{UserID: 1, Balance: 40}, nil)
			},
			expectedError: nil,
		},
		{
			name:    "Successful credit",
			userID:  1,
			amount:  5,
			txnType: domain.TxnTypeTopUp,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetUserWalletForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Balance: 50}, nil)
				txnRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&domain.WalletTransaction{}, nil)
				walletRepo.EXPECT().UpdateUserWallet(gomock.Any(), 1, int64(55)).Return(&domain.Wallet{UserID: 1, Balance: 55}, nil)
			},
			expectedError: nil,
		},
		{
			name:    "Debit exceeding balance",
			userID:  1,
			amount:  100,
			txnType: domain.TxnTypePayment,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetUserWalletForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Balance: 50}, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:          "Non-positive amount",
			userID:        1,
			amount:        0,
			txnType:       domain.TxnTypeTopUp,
			prepareMock:   nil,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Unknown transaction type",
			userID:        1,
			amount:        10,
			txnType:       "mystery",
			prepareMock:   nil,
			expectedError: ErrUnknownTxnType,
		},
		{
			name:    "Wallet does not exist",
			userID:  7,
			amount:  10,
			txnType: domain.TxnTypeFine,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetUserWalletForUpdate(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrWalletNotFound,
		},
		{
			name:    "Error writing ledger entry",
			userID:  1,
			amount:  10,
			txnType: domain.TxnTypeFine,
			prepareMock: func() {
				passThroughTx(txManager)
				walletRepo.EXPECT().GetUserWalletForUpdate(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Balance: 50}, nil)
				txnRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txn, err := service.ApplyTransaction(context.Background(), tt.userID, tt.amount, "TOKEN", tt.txnType)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amount, txn.Amount)
				assert.Equal(t, tt.txnType, txn.Type)
				assert.Equal(t, domain.TxnStatusCompleted, txn.Status)
			}
		})
	}
}
