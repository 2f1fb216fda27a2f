package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/graphicoglobal/atelier/pkg/auth"
	"github.com/graphicoglobal/atelier/pkg/errhttp"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	"github.com/graphicoglobal/atelier/pkg/logger"
	pkgvalidator "github.com/graphicoglobal/atelier/pkg/validator"
)

// LoginRequest is the request body for POST /api/admin/session.
type LoginRequest struct {
	Secret string `json:"secret" validate:"required" example:"@3136#"`
} // @name LoginRequest

// SessionResponse reports whether the caller holds an admin session.
type SessionResponse struct {
	Admin bool `json:"admin" example:"true"`
} // @name SessionResponse

// SessionHandler handles the admin session endpoints.
type SessionHandler struct {
	store  sessions.Store
	secret string
	log    logger.Logger
}

// NewSessionHandler returns a SessionHandler checking against secret.
func NewSessionHandler(store sessions.Store, secret string, log logger.Logger) *SessionHandler {
	return &SessionHandler{store: store, secret: secret, log: log}
}

// Login opens an admin session.
//
//	@Summary		Admin login
//	@Description	Checks the shared secret and sets a browser-session cookie. The session never expires on its own.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Shared secret"
//	@Success		200		{object}	SessionResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/api/admin/session [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}
	if err := auth.Login(w, r, h.store, req.Secret, h.secret); err != nil {
		if errors.Is(err, auth.ErrAccessDenied) {
			h.log.WarnContext(r.Context(), "admin login rejected")
		}
		errhttp.WriteError(w, err)
		return
	}
	h.log.InfoContext(r.Context(), "admin session opened")
	httpx.JSON(w, http.StatusOK, SessionResponse{Admin: true})
}

// Status reports the caller's session state.
//
//	@Summary	Admin session state
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/api/admin/session [get]
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	ok, _ := auth.HasAdminSession(r, h.store)
	httpx.JSON(w, http.StatusOK, SessionResponse{Admin: ok})
}

// Logout ends the admin session.
//
//	@Summary	Admin logout
//	@Tags		admin
//	@Success	204
//	@Router		/api/admin/session [delete]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.Logout(w, r, h.store); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
