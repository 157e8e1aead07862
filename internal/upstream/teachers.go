package upstream

import (
	"context"
	"net/http"

	"github.com/lernia/console-backend/internal/model"
)

// ListTeachers fetches a page of teachers. The platform keys the collection
// as "teachers"; this adapter is where that shape is normalized away.
func (c *Client) ListTeachers(ctx context.Context, page, limit int, search string) ([]model.Teacher, *model.Pagination, error) {
	var out struct {
		envelope
		Teachers   []model.Teacher   `json:"teachers"`
		Pagination *model.Pagination `json:"pagination"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/teachers", listQuery(page, limit, search), &out); err != nil {
		return nil, nil, err
	}
	return out.Teachers, out.Pagination, nil
}

// UpdateTeacher edits a teacher's editable fields.
func (c *Client) UpdateTeacher(ctx context.Context, id string, req model.UpdateTeacherRequest) (model.Teacher, error) {
	var out struct {
		envelope
		Teacher model.Teacher `json:"teacher"`
	}
	if err := c.sendJSON(ctx, http.MethodPut, c.adminBase, "/teachers/"+id, req, &out); err != nil {
		return model.Teacher{}, err
	}
	return out.Teacher, nil
}

// DeleteTeacher removes a teacher.
func (c *Client) DeleteTeacher(ctx context.Context, id string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodDelete, c.adminBase, "/teachers/"+id, nil, &out)
}

// SetPaidQuizPermission toggles whether a teacher may create paid quizzes.
func (c *Client) SetPaidQuizPermission(ctx context.Context, id string, allowed bool) error {
	body := map[string]bool{"canCreatePaidQuiz": allowed}
	var out envelope
	return c.sendJSON(ctx, http.MethodPut, c.adminBase, "/teachers/"+id+"/paid-quiz-permission", body, &out)
}

// PaidQuizStatuses fetches the paid-quiz permission overview for all teachers.
func (c *Client) PaidQuizStatuses(ctx context.Context) ([]model.PaidQuizStatus, error) {
	var out struct {
		envelope
		Teachers []model.PaidQuizStatus `json:"teachers"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/teachers/paid-quiz-status/all", nil, &out); err != nil {
		return nil, err
	}
	return out.Teachers, nil
}
