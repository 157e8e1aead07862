package upstream

import (
	"context"
	"net/http"
	"strings"

	"github.com/lernia/console-backend/internal/forms"
	"github.com/lernia/console-backend/internal/model"
)

// ListVideos fetches a page of videos, optionally narrowed by content type.
func (c *Client) ListVideos(ctx context.Context, page, limit int, contentType, search string) ([]model.Video, *model.Pagination, error) {
	q := listQuery(page, limit, search)
	if contentType != "" {
		q.Set("contentType", contentType)
	}

	var out struct {
		envelope
		Videos     []model.Video     `json:"videos"`
		Pagination *model.Pagination `json:"pagination"`
	}
	if err := c.getJSON(ctx, c.adminBase, "/videos", q, &out); err != nil {
		return nil, nil, err
	}
	return out.Videos, out.Pagination, nil
}

// CreateVideo submits a new video as multipart form data.
func (c *Client) CreateVideo(ctx context.Context, d *forms.VideoDraft) (model.Video, error) {
	var out struct {
		envelope
		Video model.Video `json:"video"`
	}
	if err := c.sendForm(ctx, http.MethodPost, c.adminBase, "/videos", videoForm(d), &out); err != nil {
		return model.Video{}, err
	}
	return out.Video, nil
}

// UpdateVideo submits video edits as multipart form data. Media fields left
// empty keep the stored file.
func (c *Client) UpdateVideo(ctx context.Context, id string, d *forms.VideoDraft) (model.Video, error) {
	var out struct {
		envelope
		Video model.Video `json:"video"`
	}
	if err := c.sendForm(ctx, http.MethodPut, c.adminBase, "/videos/"+id, videoForm(d), &out); err != nil {
		return model.Video{}, err
	}
	return out.Video, nil
}

// DeleteVideo removes a video.
func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodDelete, c.adminBase, "/videos/"+id, nil, &out)
}

func videoForm(d *forms.VideoDraft) *Form {
	form := NewForm()
	form.Field("title", strings.TrimSpace(d.Title))
	form.Field("description", strings.TrimSpace(d.Description))
	form.Field("contentType", d.ContentType)
	form.Field("teacherId", d.TeacherID)
	form.OptionalField("category", d.Category)
	form.OptionalField("customCategory", d.CustomCategory)
	form.Attachment("video", d.Video)
	form.Attachment("thumbnail", d.Thumbnail)
	return form
}
