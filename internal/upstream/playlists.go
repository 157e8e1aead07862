package upstream

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/lernia/console-backend/internal/forms"
	"github.com/lernia/console-backend/internal/model"
)

// playlistBase derives the playlist service prefix from the admin API base:
// the platform mounts playlists beside, not under, the admin namespace.
func (c *Client) playlistBase() string {
	return strings.TrimSuffix(c.adminBase, "/admin")
}

// CoursePlaylist fetches the ordered playlist items of one course.
func (c *Client) CoursePlaylist(ctx context.Context, courseID string) ([]model.PlaylistItem, error) {
	var out struct {
		envelope
		Items []model.PlaylistItem `json:"items"`
	}
	if err := c.getJSON(ctx, c.playlistBase(), "/playlists/"+courseID+"/items", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// AddPlaylistItem submits a new playlist entry as multipart form data.
func (c *Client) AddPlaylistItem(ctx context.Context, courseID string, f forms.PlaylistItemForm, video, thumbnail forms.Attachment) (model.PlaylistItem, error) {
	form := NewForm()
	form.Field("title", strings.TrimSpace(f.Title))
	form.Field("description", strings.TrimSpace(f.Description))
	contentType := f.ContentType
	if contentType == "" {
		contentType = "video"
	}
	form.Field("contentType", contentType)
	category := f.Category
	if category == "" {
		category = "general"
	}
	form.Field("category", category)
	if f.IsFree != nil {
		form.Field("isFree", strconv.FormatBool(*f.IsFree))
	}
	form.Attachment("video", video)
	form.Attachment("thumbnail", thumbnail)

	var out struct {
		envelope
		Item model.PlaylistItem `json:"item"`
	}
	if err := c.sendForm(ctx, http.MethodPost, c.playlistBase(), "/playlists/"+courseID+"/items", form, &out); err != nil {
		return model.PlaylistItem{}, err
	}
	return out.Item, nil
}

// DeletePlaylistItem removes one playlist entry.
func (c *Client) DeletePlaylistItem(ctx context.Context, courseID, itemID string) error {
	var out envelope
	return c.sendJSON(ctx, http.MethodDelete, c.playlistBase(), "/playlists/"+courseID+"/items/"+itemID, nil, &out)
}
