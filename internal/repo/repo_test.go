package repo

import (
	"testing"

	"github.com/exiat/backend/internal/pg"
	leaverepo "github.com/exiat/backend/internal/repo/leave-repo"
	transactionrepo "github.com/exiat/backend/internal/repo/transaction-repo"
	userrepo "github.com/exiat/backend/internal/repo/user-repo"
	walletrepo "github.com/exiat/backend/internal/repo/wallet-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.LeaveRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &leaverepo.Repository{}, repo.LeaveRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
