package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/response"
)

// AuditHandler exposes the console's own mutation trail.
type AuditHandler struct {
	recorder audit.Recorder
}

func NewAuditHandler(recorder audit.Recorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// Recent godoc
// GET /console/v1/audit
func (h *AuditHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := h.recorder.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if entries == nil {
		entries = []audit.Entry{}
	}
	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}
