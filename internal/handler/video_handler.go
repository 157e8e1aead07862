package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/console"
	"github.com/lernia/console-backend/internal/forms"
	"github.com/lernia/console-backend/internal/model"
	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
)

// VideoHandler serves the video screen.
type VideoHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	log      zerolog.Logger
}

func NewVideoHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *VideoHandler {
	return &VideoHandler{client: client, manager: manager, recorder: recorder, log: log}
}

// List godoc
// GET /console/v1/videos
func (h *VideoHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	videos, p, err := h.client.ListVideos(c.Request.Context(), page, limit, c.Query("contentType"), c.Query("search"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	filtered := console.Filter(videos, c.Query("search"),
		func(v model.Video) []string { return []string{v.Title, v.Description} })
	var pagination model.Pagination
	if p != nil {
		pagination = *p
	} else {
		pagination = model.Pagination{Page: page, Limit: limit, Total: len(filtered), TotalPages: 1}
	}

	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"videos": filtered}, paginationBody(pagination))
}

// Create godoc
// POST /console/v1/videos
func (h *VideoHandler) Create(c *gin.Context) {
	draft, ok := h.bindDraft(c, true)
	if !ok {
		return
	}

	video, err := h.client.CreateVideo(c.Request.Context(), draft)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "create", "video", video.ID, draft.Title)
	response.Success(c, http.StatusCreated, gin.H{"video": video})
}

// Update godoc
// PUT /console/v1/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	draft, ok := h.bindDraft(c, false)
	if !ok {
		return
	}

	video, err := h.client.UpdateVideo(c.Request.Context(), id, draft)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "update", "video", id, draft.Title)
	response.Success(c, http.StatusOK, gin.H{"video": video})
}

// Delete godoc
// DELETE /console/v1/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.DeleteVideo(c.Request.Context(), id); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "delete", "video", id, "")
	response.Success(c, http.StatusOK, gin.H{"message": "video deleted successfully"})
}

func (h *VideoHandler) bindDraft(c *gin.Context, isNew bool) (*forms.VideoDraft, bool) {
	var form forms.VideoForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return nil, false
	}

	draft, err := form.Draft()
	if err != nil {
		if errors.Is(err, forms.ErrAttachmentAmbiguous) {
			response.Fail(c, http.StatusBadRequest, response.ErrAttachmentAmbiguous)
		} else {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		}
		return nil, false
	}

	if fields := draft.Validate(isNew); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return nil, false
	}
	return draft, true
}
