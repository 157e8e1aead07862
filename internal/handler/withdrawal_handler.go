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

// WithdrawalHandler serves the payout-request screen.
type WithdrawalHandler struct {
	client   *upstream.Client
	manager  *session.Manager
	recorder audit.Recorder
	log      zerolog.Logger
}

func NewWithdrawalHandler(client *upstream.Client, manager *session.Manager, recorder audit.Recorder, log zerolog.Logger) *WithdrawalHandler {
	return &WithdrawalHandler{client: client, manager: manager, recorder: recorder, log: log}
}

// List godoc
// GET /console/v1/withdrawals
func (h *WithdrawalHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	withdrawals, p, err := h.client.ListWithdrawals(c.Request.Context(), page, limit, c.Query("status"))
	if err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	if withdrawals == nil {
		withdrawals = []model.Withdrawal{}
	}
	var pagination model.Pagination
	if p != nil {
		pagination = *p
	} else {
		pagination = model.Pagination{Page: page, Limit: limit, Total: len(withdrawals), TotalPages: 1}
	}

	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"withdrawals": withdrawals}, paginationBody(pagination))
}

// Approve godoc
// PUT /console/v1/withdrawals/:id/approve
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.client.ApproveWithdrawal(c.Request.Context(), id); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "approve", "withdrawal", id, "")
	response.Success(c, http.StatusOK, gin.H{"message": "withdrawal approved successfully"})
}

// Reject godoc
// PUT /console/v1/withdrawals/:id/reject
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.RejectWithdrawalRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.client.RejectWithdrawal(c.Request.Context(), id, req.RejectionReason); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "reject", "withdrawal", id, req.RejectionReason)
	response.Success(c, http.StatusOK, gin.H{"message": "withdrawal rejected successfully"})
}

// Complete godoc
// PUT /console/v1/withdrawals/:id/complete
func (h *WithdrawalHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CompleteWithdrawalRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.client.CompleteWithdrawal(c.Request.Context(), id, req.TransactionID, req.Remarks); err != nil {
		failUpstream(c, h.manager, err)
		return
	}

	recordAudit(c, h.recorder, h.log, "complete", "withdrawal", id, req.TransactionID)
	response.Success(c, http.StatusOK, gin.H{"message": "withdrawal completed successfully"})
}
