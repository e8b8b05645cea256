package repo

import (
	"github.com/exiat/backend/internal/pg"
	leaverepo "github.com/exiat/backend/internal/repo/leave-repo"
	transactionrepo "github.com/exiat/backend/internal/repo/transaction-repo"
	userrepo "github.com/exiat/backend/internal/repo/user-repo"
	walletrepo "github.com/exiat/backend/internal/repo/wallet-repo"
)

// Repositories holds the concrete repositories. Each service narrows them to
// its own consumer interface.
type Repositories struct {
	UserRepo        *userrepo.Repository
	WalletRepo      *walletrepo.Repository
	TransactionRepo *transactionrepo.Repository
	LeaveRepo       *leaverepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		LeaveRepo:       leaverepo.New(conn, txManager),
	}
}
