package upstream

import (
	"context"
	"net/http"

	"github.com/lernia/console-backend/internal/model"
)

// ListWithdrawals fetches a page of payout requests, optionally filtered by
// status.
func (c *Client) ListWithdrawals(ctx context.Context, page, limit int, status string) ([]model.Withdrawal, *model.Pagination, error) {
	q := listQuery(page, limit, "")
	if status != "" {
		q.Set("status", status)
	}

	var out struct {
		envelope
		Withdrawals []model.Withdrawal `json:"withdrawals"`
		Pagination  *model.Pagination  `json:"pagination"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/withdrawals", q, &out); err != nil {
		return nil, nil, err
	}
	return out.Withdrawals, out.Pagination, nil
}

// ApproveWithdrawal marks a pending withdrawal as approved.
func (c *Client) ApproveWithdrawal(ctx context.Context, id string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodPut, c.adminBase, "/withdrawals/"+id+"/approve", nil, &out)
}

// RejectWithdrawal declines a withdrawal with a mandatory reason.
func (c *Client) RejectWithdrawal(ctx context.Context, id, reason string) error {
	body := map[string]string{"rejectionReason": reason}
	var out envelope
	return c.sendJSON(ctx, http.MethodPut, c.adminBase, "/withdrawals/"+id+"/reject", body, &out)
}

// CompleteWithdrawal records the paid-out transaction for an approved
// withdrawal.
func (c *Client) CompleteWithdrawal(ctx context.Context, id, transactionID, remarks string) error {
	body := map[string]string{"transactionId": transactionID}
	if remarks != "" {
		body["remarks"] = remarks
	}
	var out envelope
	return c.sendJSON(ctx, http.MethodPut, c.adminBase, "/withdrawals/"+id+"/complete", body, &out)
}
