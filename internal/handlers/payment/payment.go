package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/dto"
	"github.com/exiat/backend/internal/service/paymentservice"
	"github.com/exiat/backend/pkg/paystack"
	"github.com/exiat/backend/pkg/utils"
	"github.com/exiat/backend/pkg/validate"
)

type Service interface {
	InitiatePayment(ctx context.Context, email string, amount int64) (*paystack.InitializeResponse, error)
	VerifyPayment(ctx context.Context, reference string) (*domain.WalletTransaction, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Initialize godoc
//
//	@Summary		Start a wallet top-up
//	@Description	Initialize a transaction with the payment provider and pass its payload back unmodified
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.InitializePaymentRequestDTO	true	"Top-up payload"
//	@Success		200		{object}	paystack.InitializeResponse
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		502		{object}	utils.Response	"Payment gateway failure"
//	@Router			/initialize-payment [post]
func (h *PaymentHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req dto.InitializePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.paymentService.InitiatePayment(r.Context(), req.Email, req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway failure")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Verify godoc
//
//	@Summary		Verify a top-up and credit the wallet
//	@Description	Confirm the transaction with the provider and credit the matching wallet through the ledger
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Verification payload"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Payment could not be reconciled"
//	@Failure		502		{object}	utils.Response	"Payment gateway failure"
//	@Router			/verify-transaction [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := h.paymentService.VerifyPayment(r.Context(), req.Reference)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrReconciliation):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, paystack.ErrGateway):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment gateway failure")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyPaymentResponseDTO{
		Message: "Wallet credited successfully.",
		Credit:  txn.Amount,
	})
}
