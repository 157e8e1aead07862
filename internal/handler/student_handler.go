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

// StudentHandler serves the student screen.
type StudentHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	screen   *console.Screen[model.Student]
	log      zerolog.Logger
}

func NewStudentHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *StudentHandler {
	h := &StudentHandler{client: client, manager: manager, recorder: recorder, log: log}
	h.screen = console.NewScreen("students",
		console.Paged(client.ListStudents),
		func(s model.Student) []string { return []string{s.Name, s.Email, s.Phone} },
	)
	return h
}

// List godoc
// GET /console/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	result, err := h.screen.Load(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"students": result.Items}, paginationBody(result.Pagination))
}

// Get godoc
// GET /console/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	student, err := h.client.GetStudent(c.Request.Context(), id)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Update godoc
// PUT /console/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.client.UpdateStudent(c.Request.Context(), id, req)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "update", "student", id, "")
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

// Delete godoc
// DELETE /console/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.DeleteStudent(c.Request.Context(), id); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "delete", "student", id, "")
	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}
