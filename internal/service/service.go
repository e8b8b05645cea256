package service

import (
	"github.com/exiat/backend/internal/config"
	authhandlers "github.com/exiat/backend/internal/handlers/auth"
	leavehandlers "github.com/exiat/backend/internal/handlers/leave"
	paymenthandlers "github.com/exiat/backend/internal/handlers/payment"
	"github.com/exiat/backend/internal/notify"
	"github.com/exiat/backend/internal/pg"
	"github.com/exiat/backend/internal/repo"
	"github.com/exiat/backend/internal/service/authservice"
	"github.com/exiat/backend/internal/service/leaveservice"
	"github.com/exiat/backend/internal/service/paymentservice"
	"github.com/exiat/backend/internal/service/walletservice"
	pkgauth "github.com/exiat/backend/pkg/auth"
)

type Services struct {
	AuthService    authhandlers.Service
	LeaveService   leavehandlers.Service
	WalletService  *walletservice.Service
	PaymentService paymenthandlers.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, gateway paymentservice.Gateway, sender notify.Sender) *Services {
	walletService := walletservice.New(repos.WalletRepo, repos.TransactionRepo, txManager)
	leaveService := leaveservice.New(repos.LeaveRepo, repos.UserRepo, walletService, txManager, cfg.FilingFee)
	authService := authservice.New(repos.UserRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{}, sender)
	paymentService := paymentservice.New(gateway, repos.UserRepo, walletService)

	return &Services{
		AuthService:    authService,
		LeaveService:   leaveService,
		WalletService:  walletService,
		PaymentService: paymentService,
	}
}
