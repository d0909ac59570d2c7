// Package handlers implements the HTTP endpoints of the API.
//
// The password_reset_handlers.go file covers the forgot/reset password
// endpoints. Neither requires a session: the emailed token is the
// credential.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// PasswordResetHandler serves the password reset endpoints.
type PasswordResetHandler struct {
	resetService PasswordResetter
}

// NewPasswordResetHandler creates a password reset handler.
func NewPasswordResetHandler(resetService PasswordResetter) *PasswordResetHandler {
	return &PasswordResetHandler{resetService: resetService}
}

// ForgotPassword handles POST /api/users/forgotpassword. It mails a
// reset link to the account's address; an unknown address is reported
// as not found so the client can prompt for sign-up.
func (h *PasswordResetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.resetService.ForgotPassword(r.Context(), req.Email); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": constants.MsgResetEmailSent})
}

// ResetPassword handles PUT /api/users/resetpassword/{resetToken}.
// The raw token from the emailed link identifies the account; the body
// carries the new password.
func (h *PasswordResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	rawToken := chi.URLParam(r, constants.ParamResetToken)
	if rawToken == "" {
		utils.BadRequest(w, "Reset token is required", nil)
		return
	}

	var req models.ResetPasswordRequest
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.resetService.ResetPassword(r.Context(), rawToken, req.Password); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": constants.MsgPasswordReset})
}
