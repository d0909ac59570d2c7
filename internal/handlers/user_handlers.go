// Package handlers implements the HTTP endpoints of the API.
//
// The user_handlers.go file covers account endpoints: registration,
// login, logout, session status, the current user's profile, profile
// updates and password changes.
package handlers

import (
	"net/http"
	"time"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// UserHandler serves the account endpoints.
type UserHandler struct {
	authService  AuthenticationService
	userService  UserManager
	verifier     auth.TokenVerifier
	sessionTTL   time.Duration
	cookieSecure bool
}

// NewUserHandler creates a user handler.
func NewUserHandler(authService AuthenticationService, userService UserManager, verifier auth.TokenVerifier, sessionTTL time.Duration, cookieSecure bool) *UserHandler {
	return &UserHandler{
		authService:  authService,
		userService:  userService,
		verifier:     verifier,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}
}

// Register handles POST /api/users/register. A successful registration
// logs the user in: the response carries the profile and session token
// and sets the session cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.UserRegistration
	if !utils.DecodeAndValidate(w, r, &reg) {
		return
	}

	user, token, err := h.authService.Register(r.Context(), &reg)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	setSessionCookie(w, token, h.sessionTTL, h.cookieSecure)
	utils.JSON(w, http.StatusCreated, models.AuthSession{User: *user.Sanitize(), Token: token})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if !utils.DecodeAndValidate(w, r, &creds) {
		return
	}

	user, token, err := h.authService.Login(r.Context(), &creds)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	setSessionCookie(w, token, h.sessionTTL, h.cookieSecure)
	utils.JSON(w, http.StatusOK, models.AuthSession{User: *user.Sanitize(), Token: token})
}

// Logout handles GET /api/users/logout. Sessions are stateless, so
// logging out means expiring the cookie; it succeeds whether or not a
// session was present.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.cookieSecure)
	utils.JSON(w, http.StatusOK, map[string]string{"message": constants.MsgLogoutSuccess})
}

// LoginStatus handles GET /api/users/loggedin. It always answers 200
// with a boolean; a missing or invalid session is a false, never an
// error.
func (h *UserHandler) LoginStatus(w http.ResponseWriter, r *http.Request) {
	_, err := auth.PrincipalFromRequest(r, h.verifier)
	utils.JSON(w, http.StatusOK, models.LoginStatus{LoggedIn: err == nil})
}

// GetCurrentUser handles GET /api/users/getuser.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	user, err := h.userService.GetByID(r.Context(), principal.UserID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, user.Sanitize())
}

// UpdateProfile handles PATCH /api/users/updateuser. Only fields
// present in the body change; an explicit empty string clears a field.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	var update models.UserProfileUpdate
	if !utils.DecodeAndValidate(w, r, &update) {
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), principal.UserID, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, user.Sanitize())
}

// ChangePassword handles PATCH /api/users/changepassword.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	var req models.ChangePasswordRequest
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := h.userService.ChangePassword(r.Context(), principal.UserID, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": constants.MsgPasswordChanged})
}
