package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
)

// DashboardHandler serves the console landing stats.
type DashboardHandler struct {
	client  *upstream.Client
	manager *session.Manager
}

func NewDashboardHandler(client *upstream.Client, manager *session.Manager) *DashboardHandler {
	return &DashboardHandler{client: client, manager: manager}
}

// Stats godoc
// GET /console/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.client.DashboardStats(c.Request.Context())
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
