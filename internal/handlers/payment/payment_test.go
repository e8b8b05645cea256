package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/dto"
	"github.com/exiat/backend/internal/service/paymentservice"
	"github.com/exiat/backend/pkg/paystack"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestInitializeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful initialization",
			body: `{"email":"user@school.edu","amount":5000}`,
			prepareMock: func() {
				resp := &paystack.InitializeResponse{Status: true, Message: "Authorization URL created"}
				resp.Data.AuthorizationURL = "https://checkout.paystack.com/abc123"
				resp.Data.Reference = "ref-1"
				service.EXPECT().InitiatePayment(gomock.Any(), "user@school.edu", int64(5000)).Return(resp, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Gateway failure",
			body: `{"email":"user@school.edu","amount":5000}`,
			prepareMock: func() {
				service.EXPECT().InitiatePayment(gomock.Any(), "user@school.edu", int64(5000)).Return(nil, paystack.ErrGateway)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "Non-positive amount",
			body:         `{"email":"user@school.edu","amount":0}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/initialize-payment", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Initialize(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp paystack.InitializeResponse
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "ref-1", resp.Data.Reference)
			}
		})
	}
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedCredit int64
	}{
		{
			name: "Successful verification",
			body: `{"reference":"ref-1"}`,
			prepareMock: func() {
				service.EXPECT().VerifyPayment(gomock.Any(), "ref-1").
					Return(&domain.WalletTransaction{UserID: 1, Amount: 5, Type: domain.TxnTypeTopUp}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedCredit: 5,
		},
		{
			name: "Reconciliation failure",
			body: `{"reference":"ref-1"}`,
			prepareMock: func() {
				service.EXPECT().VerifyPayment(gomock.Any(), "ref-1").Return(nil, paymentservice.ErrReconciliation)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Gateway failure",
			body: `{"reference":"ref-1"}`,
			prepareMock: func() {
				service.EXPECT().VerifyPayment(gomock.Any(), "ref-1").Return(nil, paystack.ErrGateway)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name: "Service failure",
			body: `{"reference":"ref-1"}`,
			prepareMock: func() {
				service.EXPECT().VerifyPayment(gomock.Any(), "ref-1").Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Missing reference",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/verify-transaction", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Verify(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.VerifyPaymentResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCredit, resp.Credit)
			}
		})
	}
}
