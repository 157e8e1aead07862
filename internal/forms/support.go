package forms

import (
	"strings"

	"github.com/lernia/console-backend/internal/model"
)

// SupportContentForm is the wire form for publishing a support document.
// Attachments are always uploaded files here; there is no URL arm.
type SupportContentForm struct {
	Type        string                 `json:"type"`
	TargetRole  string                 `json:"targetRole"`
	Title       string                 `json:"title"`
	Content     string                 `json:"content"`
	IsActive    bool                   `json:"isActive"`
	Sections    []model.SupportSection `json:"sections"`
	ContactInfo model.ContactInfo      `json:"contactInfo"`
	Attachments []FileInput            `json:"attachments"`
}

// Defaults returns the form preset used by the create flow.
func (f *SupportContentForm) Defaults() {
	if f.Type == "" {
		f.Type = "help_center"
	}
	if f.TargetRole == "" {
		f.TargetRole = "all"
	}
}

// Validate checks the form synchronously.
func (f *SupportContentForm) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(f.Content) == "" {
		fields["content"] = "Content is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// NormalizedSections renumbers section order to match list position,
// the shape the platform expects.
func (f *SupportContentForm) NormalizedSections() []model.SupportSection {
	out := make([]model.SupportSection, 0, len(f.Sections))
	for i, s := range f.Sections {
		s.Order = i
		out = append(out, s)
	}
	return out
}

// PlaylistItemForm is the wire form for adding one playlist entry to a
// course. The video is mandatory; the thumbnail optional.
type PlaylistItemForm struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ContentType string          `json:"contentType"`
	Category    string          `json:"category"`
	IsFree      *bool           `json:"isFree,omitempty"`
	Video       AttachmentInput `json:"video"`
	Thumbnail   AttachmentInput `json:"thumbnail"`
}

// Validate checks the form synchronously and resolves both attachments.
func (f *PlaylistItemForm) Validate() (video, thumb Attachment, fields map[string]string) {
	fields = make(map[string]string)

	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(f.Description) == "" {
		fields["description"] = "Description is required"
	}

	video, err := f.Video.Attachment()
	if err != nil {
		fields["video"] = "Provide either an uploaded file or a URL, not both"
	} else if video.IsZero() {
		fields["video"] = "Video file or URL is required"
	}
	thumb, err = f.Thumbnail.Attachment()
	if err != nil {
		fields["thumbnail"] = "Provide either an uploaded file or a URL, not both"
	}

	if len(fields) == 0 {
		fields = nil
	}
	return video, thumb, fields
}
