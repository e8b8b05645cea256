package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/exiat/backend/docs"
	authhandlers "github.com/exiat/backend/internal/handlers/auth"
	leavehandlers "github.com/exiat/backend/internal/handlers/leave"
	paymenthandlers "github.com/exiat/backend/internal/handlers/payment"
	"github.com/exiat/backend/internal/service"
	"github.com/exiat/backend/internal/service/walletservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		LeaveService:   leavehandlers.NewMockService(ctrl),
		WalletService:  walletservice.New(nil, nil, nil),
		PaymentService: paymenthandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockLeaveHandler := NewMockLeaveHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Forgot(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Reset(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().UpdatePassword(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaveHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaveHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaveHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaveHandler.EXPECT().CheckIn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaveHandler.EXPECT().CheckOut(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaveHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Initialize(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Verify(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		LeaveHandler:   mockLeaveHandler,
		WalletHandler:  mockWalletHandler,
		PaymentHandler: mockPaymentHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/signup", http.StatusOK},
		{"POST", "/login", http.StatusOK},
		{"POST", "/forgot", http.StatusOK},
		{"POST", "/reset", http.StatusOK},
		{"POST", "/account/password", http.StatusUnauthorized},
		{"GET", "/wallet", http.StatusUnauthorized},
		{"GET", "/wallet/transactions", http.StatusUnauthorized},
		{"POST", "/initialize-payment", http.StatusUnauthorized},
		{"POST", "/verify-transaction", http.StatusUnauthorized},
		{"GET", "/leave-requests", http.StatusUnauthorized},
		{"POST", "/submit-request", http.StatusUnauthorized},
		{"POST", "/approve-leave-request", http.StatusUnauthorized},
		{"POST", "/reject-leave-request", http.StatusUnauthorized},
		{"POST", "/check-in", http.StatusUnauthorized},
		{"POST", "/check-out", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
