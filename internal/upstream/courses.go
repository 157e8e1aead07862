package upstream

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lernia/console-backend/internal/forms"
	"github.com/lernia/console-backend/internal/model"
)

// ListCourses fetches a page of courses.
func (c *Client) ListCourses(ctx context.Context, page, limit int, search string) ([]model.Course, *model.Pagination, error) {
	var out struct {
		envelope
		Courses    []model.Course    `json:"courses"`
		Pagination *model.Pagination `json:"pagination"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/courses", listQuery(page, limit, search), &out); err != nil {
		return nil, nil, err
	}
	return out.Courses, out.Pagination, nil
}

// CreateCourse submits a new course as multipart form data.
func (c *Client) CreateCourse(ctx context.Context, p model.CoursePayload, thumbnail forms.Attachment) (model.Course, error) {
	var out struct {
		envelope
		Course model.Course `json:"course"`
	}
	form := courseForm(p, thumbnail)
	if err := c.sendForm(ctx, http.MethodPost, c.adminBase, "/courses", form, &out); err != nil {
		return model.Course{}, err
	}
	return out.Course, nil
}

// UpdateCourse submits course edits as multipart form data.
func (c *Client) UpdateCourse(ctx context.Context, id string, p model.CoursePayload, thumbnail forms.Attachment) (model.Course, error) {
	var out struct {
		envelope
		Course model.Course `json:"course"`
	}
	form := courseForm(p, thumbnail)
	if err := c.sendForm(ctx, http.MethodPut, c.adminBase, "/courses/"+id, form, &out); err != nil {
		return model.Course{}, err
	}
	return out.Course, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodDelete, c.adminBase, "/courses/"+id, nil, &out)
}

// courseForm flattens a course payload into the platform's bracketed
// multipart field convention.
func courseForm(p model.CoursePayload, thumbnail forms.Attachment) *Form {
	form := NewForm()
	form.Field("title", p.Title)
	form.Field("description", p.Description)
	form.Field("price", strconv.FormatFloat(p.Price, 'f', -1, 64))
	form.Attachment("thumbnail", thumbnail)
	if p.Details != nil {
		form.OptionalField("details[duration]", p.Details.Duration)
		form.OptionalField("details[level]", p.Details.Level)
		form.Repeated("details[requirements][]", p.Details.Requirements)
		form.Repeated("details[content][]", p.Details.Content)
	}
	return form
}
