package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/forms"
	"github.com/lernia/console-backend/internal/model"
	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
	"github.com/lernia/console-backend/internal/validator"
)

// SupportHandler serves help-center content publishing and user feedback.
type SupportHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	log      zerolog.Logger
}

func NewSupportHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *SupportHandler {
	return &SupportHandler{client: client, manager: manager, recorder: recorder, log: log}
}

// Content godoc
// GET /console/v1/support/content
func (h *SupportHandler) Content(c *gin.Context) {
	content, err := h.client.SupportContent(c.Request.Context())
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	if content == nil {
		content = []model.SupportContent{}
	}
	response.Success(c, http.StatusOK, gin.H{"content": content})
}

// CreateContent godoc
// POST /console/v1/support/content
func (h *SupportHandler) CreateContent(c *gin.Context) {
	var form forms.SupportContentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	form.Defaults()
	if fields := form.Validate(); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	content, err := h.client.CreateSupportContent(c.Request.Context(), form)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "create", "support-content", content.ID, form.Title)
	response.Success(c, http.StatusCreated, gin.H{"content": content})
}

// Feedback godoc
// GET /console/v1/support/feedback
func (h *SupportHandler) Feedback(c *gin.Context) {
	entries, err := h.client.Feedback(c.Request.Context(), c.Query("status"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	if entries == nil {
		entries = []model.FeedbackEntry{}
	}
	response.Success(c, http.StatusOK, gin.H{"feedback": entries})
}

// RespondFeedback godoc
// POST /console/v1/support/feedback/:id/respond
func (h *SupportHandler) RespondFeedback(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.RespondFeedbackRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.client.RespondFeedback(c.Request.Context(), id, req.Response); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "respond", "feedback", id, "")
	response.Success(c, http.StatusOK, gin.H{"message": "response sent successfully"})
}
