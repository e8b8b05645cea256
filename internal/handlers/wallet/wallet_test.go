package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/dto"
	"github.com/exiat/backend/internal/service/walletservice"
	"github.com/exiat/backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	return req.WithContext(ctx)
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedCode    int
		expectedBalance int64
	}{
		{
			name: "Returns the balance",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Balance: 42}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedBalance: 42,
		},
		{
			name: "Wallet not found",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.GetWallet(w, authedRequest(http.MethodGet, "/wallet"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.WalletResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedBalance, resp.Balance)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	txns := []domain.WalletTransaction{
		{UserID: 1, Amount: 1, Currency: "TOKEN", Type: domain.TxnTypePayment, Status: domain.TxnStatusCompleted, CreatedAt: time.Now()},
		{UserID: 1, Amount: 5, Currency: "TOKEN", Type: domain.TxnTypeTopUp, Status: domain.TxnStatusCompleted, CreatedAt: time.Now()},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedCount int
	}{
		{
			name: "Returns the transaction history",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(txns, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 2,
		},
		{
			name: "No transactions yet",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.GetTransactions(w, authedRequest(http.MethodGet, "/wallet/transactions"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.GetTransactionsResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedCount)
			}
		})
	}
}
