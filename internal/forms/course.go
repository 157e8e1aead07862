package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lernia/console-backend/internal/model"
)

// CourseDraft is the mutable form state behind the course modal. It exists
// only while the modal is open; cancel discards it without side effects.
type CourseDraft struct {
	Title       string
	Description string
	Price       string // raw form input, parsed on submit
	Thumbnail   Attachment
	Duration    string
	Level       string

	Requirements StringList
	Content      StringList
}

// NewCourseDraft returns the empty draft used by the create flow: one blank
// row per dynamic list so the form always renders an editable entry.
func NewCourseDraft() *CourseDraft {
	return &CourseDraft{
		Requirements: NewStringList(1),
		Content:      NewStringList(1),
	}
}

// CourseDraftFrom seeds a draft from an existing record for the edit flow,
// normalizing missing nested fields to form-friendly defaults.
func CourseDraftFrom(c model.Course) *CourseDraft {
	d := NewCourseDraft()
	d.Title = c.Title
	d.Description = c.Description
	if c.Price >= 0 {
		d.Price = strconv.FormatFloat(c.Price, 'f', -1, 64)
	}
	// A stored thumbnail is only reusable when it is an absolute URL;
	// bare filenames cannot be round-tripped through the form.
	if strings.Contains(c.Thumbnail, "http") {
		d.Thumbnail = RemoteAttachment(c.Thumbnail)
	}
	if c.Details != nil {
		d.Duration = c.Details.Duration
		d.Level = c.Details.Level
		if len(c.Details.Requirements) > 0 {
			d.Requirements = NewStringList(1, c.Details.Requirements...)
		}
		if len(c.Details.Content) > 0 {
			d.Content = NewStringList(1, c.Details.Content...)
		}
	}
	return d
}

// Apply sets a scalar form field addressed by its dotted path. Dynamic list
// rows are edited through the StringList methods instead.
func (d *CourseDraft) Apply(path, value string) error {
	switch path {
	case "title":
		d.Title = value
	case "description":
		d.Description = value
	case "price":
		d.Price = value
	case "details.duration":
		d.Duration = value
	case "details.level":
		d.Level = value
	default:
		return fmt.Errorf("unknown course field %q", path)
	}
	return nil
}

// Validate checks the draft synchronously, before any request is made.
// Returns nil when the draft may be submitted.
func (d *CourseDraft) Validate() map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "Title is required"
	}
	if strings.TrimSpace(d.Description) == "" {
		fields["description"] = "Description is required"
	}
	if d.Thumbnail.IsZero() {
		fields["thumbnail"] = "Thumbnail is required (upload file or provide URL)"
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil || price < 0 {
		fields["price"] = "Price must be a valid number greater than or equal to 0"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Payload shapes the validated draft into the upstream body: trimmed
// strings, parsed price, blank list rows filtered, empty optionals dropped.
func (d *CourseDraft) Payload() (model.CoursePayload, Attachment) {
	price, _ := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)

	p := model.CoursePayload{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Price:       price,
	}

	details := model.CourseDetails{
		Duration:     strings.TrimSpace(d.Duration),
		Level:        strings.TrimSpace(d.Level),
		Requirements: d.Requirements.Filled(),
		Content:      d.Content.Filled(),
	}
	if details.Duration != "" || details.Level != "" ||
		len(details.Requirements) > 0 || len(details.Content) > 0 {
		p.Details = &details
	}

	return p, d.Thumbnail
}

// CourseForm is the wire form bound from a console request.
type CourseForm struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Thumbnail   AttachmentInput   `json:"thumbnail"`
	Details     CourseDetailsForm `json:"details"`
}

// CourseDetailsForm is the nested details block of a course form.
type CourseDetailsForm struct {
	Duration     string   `json:"duration"`
	Level        string   `json:"level"`
	Requirements []string `json:"requirements"`
	Content      []string `json:"content"`
}

// Draft resolves the wire form into a draft, rejecting ambiguous attachments.
func (f CourseForm) Draft() (*CourseDraft, error) {
	thumb, err := f.Thumbnail.Attachment()
	if err != nil {
		return nil, err
	}
	d := NewCourseDraft()
	d.Title = f.Title
	d.Description = f.Description
	d.Price = f.Price
	d.Thumbnail = thumb
	d.Duration = f.Details.Duration
	d.Level = f.Details.Level
	if len(f.Details.Requirements) > 0 {
		d.Requirements = NewStringList(1, f.Details.Requirements...)
	}
	if len(f.Details.Content) > 0 {
		d.Content = NewStringList(1, f.Details.Content...)
	}
	return d, nil
}
