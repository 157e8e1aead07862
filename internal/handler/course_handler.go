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

// CourseHandler serves the course screen and its playlist sub-screen.
type CourseHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	screen   *console.Screen[model.Course]
	log      zerolog.Logger
}

func NewCourseHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *CourseHandler {
	h := &CourseHandler{client: client, manager: manager, recorder: recorder, log: log}
	h.screen = console.NewScreen("courses",
		console.Paged(client.ListCourses),
		func(cr model.Course) []string { return []string{cr.Title, cr.Description} },
	)
	return h
}

// List godoc
// GET /console/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	result, err := h.screen.Load(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"courses": result.Items}, paginationBody(result.Pagination))
}

// Create godoc
// POST /console/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	draft, ok := h.bindDraft(c)
	if !ok {
		return
	}

	payload, thumbnail := draft.Payload()
	course, err := h.client.CreateCourse(c.Request.Context(), payload, thumbnail)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "create", "course", course.ID, payload.Title)
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

// Update godoc
// PUT /console/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	draft, ok := h.bindDraft(c)
	if !ok {
		return
	}

	payload, thumbnail := draft.Payload()
	course, err := h.client.UpdateCourse(c.Request.Context(), id, payload, thumbnail)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "update", "course", id, payload.Title)
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

// Delete godoc
// DELETE /console/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.DeleteCourse(c.Request.Context(), id); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "delete", "course", id, "")
	response.Success(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}

// Playlist godoc
// GET /console/v1/courses/:id/playlist
func (h *CourseHandler) Playlist(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	items, err := h.client.CoursePlaylist(c.Request.Context(), id)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	if items == nil {
		items = []model.PlaylistItem{}
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// AddPlaylistItem godoc
// POST /console/v1/courses/:id/playlist
func (h *CourseHandler) AddPlaylistItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var form forms.PlaylistItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	video, thumb, fields := form.Validate()
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	item, err := h.client.AddPlaylistItem(c.Request.Context(), id, form, video, thumb)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "playlist-add", "course", id, form.Title)
	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

// DeletePlaylistItem godoc
// DELETE /console/v1/courses/:id/playlist/:itemId
func (h *CourseHandler) DeletePlaylistItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")
	if id == "" || itemID == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.DeletePlaylistItem(c.Request.Context(), id, itemID); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "playlist-remove", "course", id, itemID)
	response.Success(c, http.StatusOK, gin.H{"message": "playlist item deleted successfully"})
}

func (h *CourseHandler) bindDraft(c *gin.Context) (*forms.CourseDraft, bool) {
	var form forms.CourseForm
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

	if fields := draft.Validate(); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return nil, false
	}
	return draft, true
}
