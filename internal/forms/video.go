package forms

import "strings"

// VideoDraft is the mutable form state behind the video modal.
type VideoDraft struct {
	Title          string
	Description    string
	ContentType    string
	Category       string
	CustomCategory string
	TeacherID      string
	Video          Attachment
	Thumbnail      Attachment
}

// NewVideoDraft returns the empty draft used by the create flow.
func NewVideoDraft() *VideoDraft {
	return &VideoDraft{ContentType: "full"}
}

// Validate checks the draft synchronously. An existing video keeps its
// stored media on edit, so the video attachment is only mandatory when
// creating (isNew).
func (d *VideoDraft) Validate(isNew bool) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(d.Description) == "" {
		fields["description"] = "Description is required"
	}
	if d.TeacherID == "" {
		fields["teacherId"] = "Please select a teacher"
	}
	if isNew && d.Video.IsZero() {
		fields["video"] = "Video file or URL is required"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// VideoForm is the wire form bound from a console request.
type VideoForm struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ContentType    string          `json:"contentType"`
	Category       string          `json:"category"`
	CustomCategory string          `json:"customCategory"`
	TeacherID      string          `json:"teacherId"`
	Video          AttachmentInput `json:"video"`
	Thumbnail      AttachmentInput `json:"thumbnail"`
}

// Draft resolves the wire form into a draft, rejecting ambiguous attachments.
func (f VideoForm) Draft() (*VideoDraft, error) {
	video, err := f.Video.Attachment()
	if err != nil {
		return nil, err
	}
	thumb, err := f.Thumbnail.Attachment()
	if err != nil {
		return nil, err
	}
	d := NewVideoDraft()
	d.Title = f.Title
	d.Description = f.Description
	if f.ContentType != "" {
		d.ContentType = f.ContentType
	}
	d.Category = f.Category
	d.CustomCategory = f.CustomCategory
	d.TeacherID = f.TeacherID
	d.Video = video
	d.Thumbnail = thumb
	return d, nil
}
