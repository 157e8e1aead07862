package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/middleware"
	"github.com/lernia/console-backend/internal/model"
	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
	"github.com/lernia/console-backend/internal/validator"
)

// SessionHandler handles console login, logout and profile lookup.
type SessionHandler struct {
	manager *session.Manager
	log     zerolog.Logger
}

func NewSessionHandler(manager *session.Manager, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{manager: manager, log: log}
}

// Login godoc
// POST /console/v1/session/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, profile, err := h.manager.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if rej, ok := upstream.AsRejection(err); ok && rej.StatusCode == http.StatusUnauthorized {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		failUpstream(c, h.manager, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": profile,
	})
}

// Logout godoc
// POST /console/v1/session/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.manager.Logout(c.Request.Context(), sess.ID); err != nil {
		h.log.Warn().Err(err).Str("session_id", sess.ID).Msg("logout cleanup failed")
	}

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// GET /console/v1/session/me
func (h *SessionHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": sess.Profile})
}
