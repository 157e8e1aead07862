package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lernia/console-backend/internal/forms"
	"github.com/lernia/console-backend/internal/model"
)

// SupportContent fetches all published support documents. The support
// service keys its collection as "data".
func (c *Client) SupportContent(ctx context.Context) ([]model.SupportContent, error) {
	var out struct {
		envelope
		Data []model.SupportContent `json:"data"`
	}
	if err := c.getJSON(ctx, c.supportBase, "/content", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateSupportContent publishes a support document as multipart form data.
// Sections and contact info travel as embedded JSON fields; attachments as
// file parts under a shared name.
func (c *Client) CreateSupportContent(ctx context.Context, f forms.SupportContentForm) (model.SupportContent, error) {
	sections, err := json.Marshal(f.NormalizedSections())
	if err != nil {
		return model.SupportContent{}, fmt.Errorf("encode sections: %w", err)
	}
	contact, err := json.Marshal(f.ContactInfo)
	if err != nil {
		return model.SupportContent{}, fmt.Errorf("encode contact info: %w", err)
	}

	form := NewForm()
	form.Field("type", f.Type)
	form.Field("targetRole", f.TargetRole)
	form.Field("title", strings.TrimSpace(f.Title))
	form.Field("content", strings.TrimSpace(f.Content))
	form.Field("isActive", strconv.FormatBool(f.IsActive))
	form.Field("sections", string(sections))
	form.Field("contactInfo", string(contact))
	for _, file := range f.Attachments {
		form.File("attachments", file.Name, file.Data)
	}

	var out struct {
		envelope
		Data model.SupportContent `json:"data"`
	}
	if err := c.sendForm(ctx, http.MethodPost, c.supportBase, "/content", form, &out); err != nil {
		return model.SupportContent{}, err
	}
	return out.Data, nil
}

// Feedback fetches user feedback entries from the admin support namespace,
// optionally narrowed by status.
func (c *Client) Feedback(ctx context.Context, status string) ([]model.FeedbackEntry, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": []string{status}}
	}
	var out struct {
		envelope
		Data []model.FeedbackEntry `json:"data"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/support/feedback", q, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// RespondFeedback stores the admin reply on one feedback entry.
func (c *Client) RespondFeedback(ctx context.Context, id, response string) error {
	body := map[string]string{"response": response}
	var out envelope
	return c.sendJSON(ctx, http.MethodPost, c.adminBase, "/support/feedback/"+id+"/respond", body, &out)
}
