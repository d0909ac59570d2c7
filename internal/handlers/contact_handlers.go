// Package handlers implements the HTTP endpoints of the API.
package handlers

import (
	"net/http"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	users  UserManager
	mailer ContactMailer
}

// NewContactHandler creates a contact handler.
func NewContactHandler(users UserManager, mailer ContactMailer) *ContactHandler {
	return &ContactHandler{users: users, mailer: mailer}
}

// Send handles POST /api/contactus. The sender's identity comes from
// the session, so the relayed email carries a verified address in its
// Reply-To.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	var req models.ContactRequest
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.GetByID(r.Context(), principal.UserID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if err := h.mailer.SendContactEmail(user, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": constants.MsgContactSent})
}
