package handlers

import (
	"net/http"

	_ "github.com/exiat/backend/docs"
	authhandlers "github.com/exiat/backend/internal/handlers/auth"
	leavehandlers "github.com/exiat/backend/internal/handlers/leave"
	paymenthandlers "github.com/exiat/backend/internal/handlers/payment"
	wallethandlers "github.com/exiat/backend/internal/handlers/wallet"
	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/service"
	"github.com/exiat/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Forgot(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	UpdatePassword(w http.ResponseWriter, r *http.Request)
}

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Initialize(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	LeaveHandler   LeaveHandler
	WalletHandler  WalletHandler
	PaymentHandler PaymentHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		LeaveHandler:   leavehandlers.New(s.LeaveService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/signup", h.AuthHandler.Register)
	r.Post("/login", h.AuthHandler.Login)
	r.Post("/forgot", h.AuthHandler.Forgot)
	r.Post("/reset", h.AuthHandler.Reset)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/account/password", h.AuthHandler.UpdatePassword)

		r.Get("/wallet", h.WalletHandler.GetWallet)
		r.Get("/wallet/transactions", h.WalletHandler.GetTransactions)
		r.Post("/initialize-payment", h.PaymentHandler.Initialize)
		r.Post("/verify-transaction", h.PaymentHandler.Verify)

		r.Get("/leave-requests", h.LeaveHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleStudent))
			r.Post("/submit-request", h.LeaveHandler.Submit)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleSecretary))
			r.Post("/approve-leave-request", h.LeaveHandler.Approve)
			r.Post("/reject-leave-request", h.LeaveHandler.Reject)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleSecurityGuard))
			r.Post("/check-in", h.LeaveHandler.CheckIn)
			r.Post("/check-out", h.LeaveHandler.CheckOut)
		})
	})

	return r
}
