package handler

import (
	"net/http"
	"strconv"
	"time"

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

// QuizHandler serves the quiz screen plus attempts and rankings views.
type QuizHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	screen   *console.Screen[model.Quiz]
	log      zerolog.Logger
}

func NewQuizHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *QuizHandler {
	h := &QuizHandler{client: client, manager: manager, recorder: recorder, log: log}
	h.screen = console.NewScreen("quizzes",
		console.Paged(client.ListQuizzes),
		func(q model.Quiz) []string { return []string{q.Title, q.Description} },
	)
	return h
}

// List godoc
// GET /console/v1/quizzes
func (h *QuizHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	result, err := h.screen.Load(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"quizzes": result.Items}, paginationBody(result.Pagination))
}

// Create godoc
// POST /console/v1/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	draft, ok := h.bindDraft(c, true)
	if !ok {
		return
	}

	quiz, err := h.client.CreateQuiz(c.Request.Context(), draft.Payload())
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "create", "quiz", quiz.ID, draft.Title)
	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz})
}

// Update godoc
// PUT /console/v1/quizzes/:id
func (h *QuizHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	draft, ok := h.bindDraft(c, false)
	if !ok {
		return
	}

	quiz, err := h.client.UpdateQuiz(c.Request.Context(), id, draft.Payload())
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "update", "quiz", id, draft.Title)
	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Delete godoc
// DELETE /console/v1/quizzes/:id
func (h *QuizHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.DeleteQuiz(c.Request.Context(), id); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "delete", "quiz", id, "")
	response.Success(c, http.StatusOK, gin.H{"message": "quiz deleted successfully"})
}

// Attempts godoc
// GET /console/v1/quizzes/:id/attempts
func (h *QuizHandler) Attempts(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	page, limit := pageQuery(c)
	attempts, err := h.client.QuizAttempts(c.Request.Context(), id, page, limit)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attempts": attempts})
}

// Rankings godoc
// GET /console/v1/quizzes/:id/rankings
func (h *QuizHandler) Rankings(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = 50
	}

	rankings, err := h.client.QuizRankings(c.Request.Context(), id, limit)
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rankings": rankings})
}

func (h *QuizHandler) bindDraft(c *gin.Context, isNew bool) (*forms.QuizDraft, bool) {
	var form forms.QuizForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return nil, false
	}

	draft := form.Draft()
	if fields := draft.Validate(isNew, time.Now()); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return nil, false
	}
	return draft, true
}
