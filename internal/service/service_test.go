package service

import (
	"testing"

	"github.com/exiat/backend/internal/config"
	"github.com/exiat/backend/internal/notify"
	"github.com/exiat/backend/internal/pg"
	"github.com/exiat/backend/internal/repo"
	"github.com/exiat/backend/internal/service/paymentservice"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	mockGateway := paymentservice.NewMockGateway(ctrl)

	cfg := &config.Config{FilingFee: 1, FineAmount: 10}
	repos := repo.New(mockDB, mockTxManager)

	services := New(cfg, repos, mockTxManager, mockGateway, notify.NopSender{})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.LeaveService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.PaymentService)
}
