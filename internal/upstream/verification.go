package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lernia/console-backend/internal/model"
)

// verificationList is the KYC listing shape: the collection key depends on
// the population being queried.
type verificationList struct {
	envelope
	Count    int                         `json:"count"`
	Teachers []model.VerificationRequest `json:"teachers"`
	Students []model.VerificationRequest `json:"students"`
}

func (l *verificationList) requests(role model.VerificationRole) []model.VerificationRequest {
	if role == model.VerificationRoleTeacher {
		return l.Teachers
	}
	return l.Students
}

// PendingVerifications fetches KYC submissions awaiting review for one
// population.
func (c *Client) PendingVerifications(ctx context.Context, role model.VerificationRole) ([]model.VerificationRequest, error) {
	var out verificationList
	if err := c.getJSON(ctx, c.verificationBase, "/"+string(role)+"/pending", nil, &out); err != nil {
		return nil, err
	}
	return out.requests(role), nil
}

// AllVerifications fetches the full KYC history for one population,
// optionally narrowed by status.
func (c *Client) AllVerifications(ctx context.Context, role model.VerificationRole, status string) ([]model.VerificationRequest, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": []string{status}}
	}
	var out verificationList
	if err := c.getJSON(ctx, c.verificationBase, "/"+string(role)+"/all", q, &out); err != nil {
		return nil, err
	}
	return out.requests(role), nil
}

// ApproveVerification accepts one KYC submission.
func (c *Client) ApproveVerification(ctx context.Context, role model.VerificationRole, id string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodPut, c.verificationBase, "/"+string(role)+"/approve/"+id, nil, &out)
}

// RejectVerification declines one KYC submission with a mandatory reason.
func (c *Client) RejectVerification(ctx context.Context, role model.VerificationRole, id, reason string) error {
	body := map[string]string{"reason": reason}
	var out envelope
	return c.sendJSON(ctx, http.MethodPut, c.verificationBase, "/"+string(role)+"/reject/"+id, body, &out)
}
