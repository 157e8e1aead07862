package upstream

import (
	"context"
	"net/http"

	"github.com/lernia/console-backend/internal/model"
)

// ListStudents fetches a page of students.
func (c *Client) ListStudents(ctx context.Context, page, limit int, search string) ([]model.Student, *model.Pagination, error) {
	var out struct {
		envelope
		Students   []model.Student   `json:"students"`
		Pagination *model.Pagination `json:"pagination"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/students", listQuery(page, limit, search), &out); err != nil {
		return nil, nil, err
	}
	return out.Students, out.Pagination, nil
}

// GetStudent fetches one student record.
func (c *Client) GetStudent(ctx context.Context, id string) (model.Student, error) {
	var out struct {
		envelope
		Student model.Student `json:"student"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/students/"+id, nil, &out); err != nil {
		return model.Student{}, err
	}
	return out.Student, nil
}

// UpdateStudent edits a student's editable fields.
func (c *Client) UpdateStudent(ctx context.Context, id string, req model.UpdateStudentRequest) (model.Student, error) {
	var out struct {
		envelope
		Student model.Student `json:"student"`
	}
	if err := c.sendJSON(ctx, http.MethodPut, c.adminBase, "/students/"+id, req, &out); err != nil {
		return model.Student{}, err
	}
	return out.Student, nil
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodDelete, c.adminBase, "/students/"+id, nil, &out)
}
