package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/dto"
	"github.com/exiat/backend/internal/service/authservice"
	pkgauth "github.com/exiat/backend/pkg/auth"
	"github.com/exiat/backend/pkg/utils"
	"github.com/exiat/backend/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, in authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID int, role string) (string, error)
	UpdatePassword(ctx context.Context, userID int, password string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new account
//	@Description	Create a user with a role-specific profile and an empty wallet
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/signup [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.authService.Register(r.Context(), authservice.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Role:      req.Role,
		RegNumber: req.RegNumber,
		Position:  req.Position,
	})
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterResponseDTO{
		Message: "User registered successfully.",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Success! You are logged in.",
	})
}

// Forgot godoc
//
//	@Summary		Request a password reset
//	@Description	Email a reset token to the account, if it exists
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ForgotPasswordRequestDTO	true	"Forgot password request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/forgot [post]
func (h *AuthHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is not valid")
		return
	}
	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "If that account exists, a reset token has been sent.",
	})
}

// Reset godoc
//
//	@Summary		Reset password with a token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ResetPasswordRequestDTO	true	"Reset password request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body or token"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/reset [post]
func (h *AuthHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.authService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, authservice.ErrInvalidResetToken) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Password has been changed.",
	})
}

// UpdatePassword godoc
//
//	@Summary		Change the current user's password
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdatePasswordRequestDTO	true	"Update password request body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/account/password [post]
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.UpdatePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.authService.UpdatePassword(r.Context(), userID, req.Password); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{
		Message: "Password has been changed.",
	})
}
