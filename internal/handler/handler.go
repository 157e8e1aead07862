package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/audit"
	"github.com/lernia/console-backend/internal/middleware"
	"github.com/lernia/console-backend/internal/model"
	"github.com/lernia/console-backend/internal/response"
	"github.com/lernia/console-backend/internal/session"
	"github.com/lernia/console-backend/internal/upstream"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// pageQuery parses ?page= and ?limit= with sane bounds.
func pageQuery(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func paginationBody(p model.Pagination) *response.Pagination {
	return &response.Pagination{
		Page:       p.Page,
		PerPage:    p.Limit,
		TotalItems: p.Total,
		TotalPages: p.TotalPages,
	}
}

// failUpstream translates a platform call error into a console response. A
// session-expiry signal also tears the console session down, so the client
// is forced back through login.
func failUpstream(c *gin.Context, manager *session.Manager, err error) {
	if errors.Is(err, upstream.ErrSessionExpired) {
		if sess, ok := middleware.GetSession(c); ok {
			manager.Expire(c.Request.Context(), sess.ID)
		}
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionExpired)
		return
	}

	if rej, ok := upstream.AsRejection(err); ok {
		status := rej.StatusCode
		code := response.ErrUpstreamRejected
		if status == http.StatusNotFound {
			code = response.ErrNotFound
		}
		if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		if rej.Message != "" {
			response.FailWithMessage(c, status, code, rej.Message)
		} else {
			response.Fail(c, status, code)
		}
		return
	}

	if errors.Is(err, upstream.ErrUnavailable) {
		response.Fail(c, http.StatusBadGateway, response.ErrUpstreamUnavailable)
		return
	}

	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}

// recordAudit writes an audit entry for an accepted mutation. Failures are
// logged and swallowed.
func recordAudit(c *gin.Context, recorder audit.Recorder, log zerolog.Logger, action, resource, resourceID, detail string) {
	sess, _ := middleware.GetSession(c)
	entry := audit.Entry{
		AdminID:    sess.Profile.ID,
		AdminEmail: sess.Profile.Email,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		RequestID:  c.GetString(response.ContextKeyRequestID),
		Detail:     detail,
	}
	if err := recorder.Record(c.Request.Context(), entry); err != nil {
		log.Warn().Err(err).
			Str("action", action).
			Str("resource", resource).
			Msg("failed to record audit entry")
	}
}
