package wallet

import (
	"context"
	"errors"
	"net/http"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/dto"
	"github.com/exiat/backend/internal/service/walletservice"
	"github.com/exiat/backend/pkg/auth"
	"github.com/exiat/backend/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve the token balance for the authenticated user
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Wallet not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance: wallet.Balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transaction history
//	@Description	Get the ledger entries for the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetTransactionsResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response					"No transactions"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txns, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.GetTransactionsResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.GetTransactionsResponseDTO{
			Amount:    txn.Amount,
			Currency:  txn.Currency,
			Type:      txn.Type,
			Status:    txn.Status,
			CreatedAt: txn.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
