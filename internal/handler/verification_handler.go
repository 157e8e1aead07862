package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/model"
	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
	"github.com/lernia/console-backend/internal/validator"
)

// VerificationHandler serves the identity-verification review screen.
type VerificationHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	log      zerolog.Logger
}

func NewVerificationHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *VerificationHandler {
	return &VerificationHandler{client: client, manager: manager, recorder: recorder, log: log}
}

// Pending godoc
// GET /console/v1/verification/:role/pending
func (h *VerificationHandler) Pending(c *gin.Context) {
	role, ok := h.role(c)
	if !ok {
		return
	}

	requests, err := h.client.PendingVerifications(c.Request.Context(), role)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	if requests == nil {
		requests = []model.VerificationRequest{}
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

// All godoc
// GET /console/v1/verification/:role/all
func (h *VerificationHandler) All(c *gin.Context) {
	role, ok := h.role(c)
	if !ok {
		return
	}

	requests, err := h.client.AllVerifications(c.Request.Context(), role, c.Query("status"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	if requests == nil {
		requests = []model.VerificationRequest{}
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

// Approve godoc
// PUT /console/v1/verification/:role/:id/approve
func (h *VerificationHandler) Approve(c *gin.Context) {
	role, ok := h.role(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.ApproveVerification(c.Request.Context(), role, id); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "approve", "verification", id, string(role))
	response.Success(c, http.StatusOK, gin.H{"message": "verification approved successfully"})
}

// Reject godoc
// PUT /console/v1/verification/:role/:id/reject
func (h *VerificationHandler) Reject(c *gin.Context) {
	role, ok := h.role(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.RejectVerificationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.client.RejectVerification(c.Request.Context(), role, id, req.Reason); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "reject", "verification", id, string(role))
	response.Success(c, http.StatusOK, gin.H{"message": "verification rejected successfully"})
}

func (h *VerificationHandler) role(c *gin.Context) (model.VerificationRole, bool) {
	role := model.VerificationRole(c.Param("role"))
	if !role.Valid() {
		response.Fail(c, http.StatusBadRequest, response.ErrUnknownScreen)
		return "", false
	}
	return role, true
}
