package leave

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/dto"
	"github.com/exiat/backend/internal/service/leaveservice"
	"github.com/exiat/backend/internal/service/walletservice"
	"github.com/exiat/backend/pkg/auth"
	"github.com/exiat/backend/pkg/utils"
	"github.com/exiat/backend/pkg/validate"
)

type Service interface {
	Submit(ctx context.Context, userID int, reason string, departureDate, returnDate time.Time) (*domain.LeaveRequest, error)
	Approve(ctx context.Context, requestID string, staffID int) (*domain.LeaveRequest, error)
	Reject(ctx context.Context, requestID string, staffID int) (*domain.LeaveRequest, error)
	CheckIn(ctx context.Context, requestID string) (*domain.LeaveRequest, error)
	CheckOut(ctx context.Context, requestID string) (*domain.LeaveRequest, error)
	ListByUser(ctx context.Context, userID int) ([]domain.LeaveRequest, error)
}

type LeaveHandler struct {
	leaveService Service
}

func New(leaveService Service) *LeaveHandler {
	return &LeaveHandler{
		leaveService: leaveService,
	}
}

func toResponseDTO(req *domain.LeaveRequest) dto.LeaveRequestResponseDTO {
	return dto.LeaveRequestResponseDTO{
		ID:            req.ID,
		StudentID:     req.StudentID,
		Reason:        req.Reason,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		StaffID:       req.StaffID,
		IsApproved:    req.IsApproved,
		IsRejected:    req.IsRejected,
		IsCheckedIn:   req.IsCheckedIn,
		IsCheckedOut:  req.IsCheckedOut,
		IsFinePaid:    req.IsFinePaid,
	}
}

// Submit godoc
//
//	@Summary		Submit a leave request
//	@Description	Create a new leave request and debit the filing fee from the student's wallet
//	@Tags			Leave
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitLeaveRequestDTO	true	"Leave request payload"
//	@Success		201		{object}	dto.LeaveRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Student not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/submit-request [post]
func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}

	var req dto.SubmitLeaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.leaveService.Submit(r.Context(), userID, req.Reason, req.DepartureDate, req.ReturnDate)
	if err != nil {
		switch {
		case errors.Is(err, leaveservice.ErrEmptyReason):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, leaveservice.ErrStudentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient Balance")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(created))
}

func (h *LeaveHandler) decide(w http.ResponseWriter, r *http.Request, decide func(ctx context.Context, requestID string, staffID int) (*domain.LeaveRequest, error), message string) {
	var req dto.LeaveDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := decide(r.Context(), req.RequestID, req.StaffID); err != nil {
		if errors.Is(err, leaveservice.ErrRequestNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

// Approve godoc
//
//	@Summary		Approve a leave request
//	@Tags			Leave
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LeaveDecisionRequestDTO	true	"Decision payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Leave request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/approve-leave-request [post]
func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Approve, "Leave request approved successfully.")
}

// Reject godoc
//
//	@Summary		Reject a leave request
//	@Tags			Leave
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LeaveDecisionRequestDTO	true	"Decision payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Leave request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/reject-leave-request [post]
func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.leaveService.Reject, "Leave request rejected successfully.")
}

func (h *LeaveHandler) gate(w http.ResponseWriter, r *http.Request, pass func(ctx context.Context, requestID string) (*domain.LeaveRequest, error), message string) {
	var req dto.GatePassRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := pass(r.Context(), req.RequestID); err != nil {
		if errors.Is(err, leaveservice.ErrRequestNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

// CheckIn godoc
//
//	@Summary		Record a student back on campus
//	@Tags			Leave
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GatePassRequestDTO	true	"Gate pass payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Leave request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/check-in [post]
func (h *LeaveHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.gate(w, r, h.leaveService.CheckIn, "Student checked in successfully.")
}

// CheckOut godoc
//
//	@Summary		Record a student leaving campus
//	@Tags			Leave
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GatePassRequestDTO	true	"Gate pass payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Leave request not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/check-out [post]
func (h *LeaveHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.gate(w, r, h.leaveService.CheckOut, "Student checked out successfully.")
}

// List godoc
//
//	@Summary		List the caller's own leave requests
//	@Tags			Leave
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LeaveRequestResponseDTO
//	@Success		204	{object}	utils.Response	"No leave requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Student not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/leave-requests [get]
func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		return
	}

	reqs, err := h.leaveService.ListByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, leaveservice.ErrStudentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch leave requests")
		return
	}
	if len(reqs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No leave requests")
		return
	}

	response := make([]dto.LeaveRequestResponseDTO, len(reqs))
	for i := range reqs {
		response[i] = toResponseDTO(&reqs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
