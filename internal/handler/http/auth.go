package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmansurov/go-estate-api/internal/logger"
	"github.com/dmansurov/go-estate-api/internal/service"
	"github.com/dmansurov/go-estate-api/internal/store"
	"github.com/dmansurov/go-estate-api/internal/utils"
	"github.com/dmansurov/go-estate-api/models"
)

// Client-facing message strings of the auth endpoints. The forgot-password
// message is shared by the account-exists and account-missing paths so the
// endpoint cannot be used for enumeration.
const (
	msgSignupSuccess = "User created successfully. Please verify your email with the OTP sent to your email."
	msgVerifySuccess = "Email verified successfully"
	msgOTPResent     = "OTP has been resent to your email address."
	msgForgotGeneric = "If an account with that email exists, a password reset link has been sent."
	msgResetSuccess  = "Password reset successfully"
	msgLogoutSuccess = "Logged out successfully"

	msgInvalidCredentials = "Invalid email or password"
	msgEmailNotVerified   = "Please verify your email before logging in. A new OTP has been sent to your email address."
	msgUserNotFound       = "User not found"
	msgEmailVerified      = "Email already verified"
	msgInvalidOTP         = "Invalid OTP"
	msgOTPExpired         = "OTP has expired. Please request a new one."
	msgInvalidResetToken  = "Invalid reset token"
	msgResetTokenExpired  = "Reset token has expired. Please request a new one."
	msgInvalidRefresh     = "Invalid or expired refresh token"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid signup request")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			writeError(w, "User with this email already exists", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.UserMessageResponse{Message: msgSignupSuccess, User: createdUser}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid login request")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pair, foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn().Msg("invalid email or password")
			writeError(w, msgInvalidCredentials, http.StatusUnauthorized)
		case errors.Is(err, service.ErrEmailNotVerified):
			log.Warn().Msg("login attempt on unverified account")
			writeError(w, msgEmailNotVerified, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		AccessToken:  pair.AccessToken.SignedString,
		RefreshToken: pair.RefreshToken.SignedString,
		User:         foundUser,
	}, http.StatusOK)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid verify-email request")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	verifiedUser, err := h.services.AuthService.VerifyEmail(ctx, req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			writeError(w, msgUserNotFound, http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailAlreadyVerified):
			writeError(w, msgEmailVerified, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidOTP):
			writeError(w, msgInvalidOTP, http.StatusBadRequest)
		case errors.Is(err, service.ErrOTPExpired):
			writeError(w, msgOTPExpired, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during email verification")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.UserMessageResponse{Message: msgVerifySuccess, User: verifiedUser}, http.StatusOK)
}

func (h *Handler) resendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid resend-otp request")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResendOTP(ctx, req.Email); err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			writeError(w, msgUserNotFound, http.StatusBadRequest)
		case errors.Is(err, service.ErrEmailAlreadyVerified):
			writeError(w, msgEmailVerified, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during OTP resend")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgOTPResent}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid forgot-password request")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		log.Err(err).Msg("unexpected error occurred during forgot-password")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgForgotGeneric}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid reset-password request")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, req.Email, req.ResetToken, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			writeError(w, msgUserNotFound, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidResetToken):
			writeError(w, msgInvalidResetToken, http.StatusBadRequest)
		case errors.Is(err, service.ErrResetTokenExpired):
			writeError(w, msgResetTokenExpired, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during password reset")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgResetSuccess}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		log.Err(err).Msg("invalid refresh request")
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	pair, foundUser, err := h.services.AuthService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefreshToken):
			log.Warn().Msg("refresh token rejected")
			writeError(w, msgInvalidRefresh, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		AccessToken:  pair.AccessToken.SignedString,
		RefreshToken: pair.RefreshToken.SignedString,
		User:         foundUser,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("unexpected error occurred during logout")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgLogoutSuccess}, http.StatusOK)
}
