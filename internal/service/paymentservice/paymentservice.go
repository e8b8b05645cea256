package paymentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/pkg/paystack"
	"go.uber.org/zap"
)

// Gateway is the payment provider surface, implemented by pkg/paystack.
type Gateway interface {
	Initialize(ctx context.Context, email string, amount int64) (*paystack.InitializeResponse, error)
	Verify(ctx context.Context, reference string) (*paystack.VerifyData, error)
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Ledger interface {
	ApplyTransaction(ctx context.Context, userID int, amount int64, currency, txnType string) (*domain.WalletTransaction, error)
}

// The provider reports amounts in its smallest currency subunit; one wallet
// token is worth this many subunits.
const subunitsPerToken = 1000

var ErrReconciliation = errors.New("can't reconcile payment with a local account")

type Service struct {
	gateway  Gateway
	userRepo UserRepo
	ledger   Ledger
}

func New(gateway Gateway, userRepo UserRepo, ledger Ledger) *Service {
	return &Service{
		gateway:  gateway,
		userRepo: userRepo,
		ledger:   ledger,
	}
}

// InitiatePayment asks the provider for a new top-up authorization. Local
// state is untouched, the wallet is only credited after verification.
func (s *Service) InitiatePayment(ctx context.Context, email string, amount int64) (*paystack.InitializeResponse, error) {
	resp, err := s.gateway.Initialize(ctx, email, amount)
	if err != nil {
		zap.L().Error("payment initialization failed", zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment initialized", zap.String("email", email), zap.String("reference", resp.Data.Reference))
	return resp, nil
}

// VerifyPayment confirms a transaction with the provider and credits the
// customer's wallet through the ledger, so the top-up leaves an auditable
// transaction record like every other balance change.
func (s *Service) VerifyPayment(ctx context.Context, reference string) (*domain.WalletTransaction, error) {
	data, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		if errors.Is(err, paystack.ErrMalformedResponse) {
			return nil, fmt.Errorf("%w: %w", ErrReconciliation, err)
		}
		zap.L().Error("payment verification failed", zap.Error(err))
		return nil, err
	}

	if data.Status != "success" {
		return nil, fmt.Errorf("%w: transaction %s has status %q", ErrReconciliation, reference, data.Status)
	}

	user, err := s.userRepo.FindByEmail(ctx, data.Customer.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		zap.L().Error("no local account for payment", zap.String("email", data.Customer.Email), zap.String("reference", reference))
		return nil, fmt.Errorf("%w: no account for %s", ErrReconciliation, data.Customer.Email)
	}

	tokens := data.Amount / subunitsPerToken
	if tokens <= 0 {
		return nil, fmt.Errorf("%w: confirmed amount %d is below one token", ErrReconciliation, data.Amount)
	}

	txn, err := s.ledger.ApplyTransaction(ctx, user.ID, tokens, "TOKEN", domain.TxnTypeTopUp)
	if err != nil {
		zap.L().Error("can't credit wallet for payment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("wallet credited", zap.Int("userID", user.ID), zap.Int64("tokens", tokens), zap.String("reference", reference))
	return txn, nil
}
