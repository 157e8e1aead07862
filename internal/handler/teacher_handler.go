package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/console"
	"github.com/lernia/console-backend/internal/model"
	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
	"github.com/lernia/console-backend/internal/validator"
)

// TeacherHandler serves the teacher screen.
type TeacherHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	screen   *console.Screen[model.Teacher]
	log      zerolog.Logger
}

func NewTeacherHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *TeacherHandler {
	h := &TeacherHandler{client: client, manager: manager, recorder: recorder, log: log}
	h.screen = console.NewScreen("teachers",
		console.Paged(client.ListTeachers),
		func(t model.Teacher) []string { return []string{t.Name, t.Email} },
	)
	return h
}

// List godoc
// GET /console/v1/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	result, err := h.screen.Load(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"teachers": result.Items}, paginationBody(result.Pagination))
}

// Update godoc
// PUT /console/v1/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher, err := h.client.UpdateTeacher(c.Request.Context(), id, req)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "update", "teacher", id, "")
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// Delete godoc
// DELETE /console/v1/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.DeleteTeacher(c.Request.Context(), id); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "delete", "teacher", id, "")
	response.Success(c, http.StatusOK, gin.H{"message": "teacher deleted successfully"})
}

// SetPaidQuizPermission godoc
// PUT /console/v1/teachers/:id/paid-quiz-permission
func (h *TeacherHandler) SetPaidQuizPermission(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.PaidQuizPermissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.client.SetPaidQuizPermission(c.Request.Context(), id, *req.CanCreatePaidQuiz); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	detail := "revoked"
	if *req.CanCreatePaidQuiz {
		detail = "granted"
	}
	recordAudit(c, h.recorder, h.log, "paid-quiz-permission", "teacher", id, detail)
	response.Success(c, http.StatusOK, gin.H{"message": "permission updated successfully"})
}

// PaidQuizStatuses godoc
// GET /console/v1/teachers/paid-quiz-status
func (h *TeacherHandler) PaidQuizStatuses(c *gin.Context) {
	statuses, err := h.client.PaidQuizStatuses(c.Request.Context())
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	if statuses == nil {
		statuses = []model.PaidQuizStatus{}
	}
	response.Success(c, http.StatusOK, gin.H{"statuses": statuses})
}
