package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lernia/console-backend/internal/model"
)

func validCourseDraft() *CourseDraft {
	d := NewCourseDraft()
	d.Title = "Intro to Physics"
	d.Description = "Mechanics and waves"
	d.Price = "49.99"
	d.Thumbnail = RemoteAttachment("https://cdn.example.com/physics.png")
	return d
}

func TestCourseDraftValidateOK(t *testing.T) {
	assert.Nil(t, validCourseDraft().Validate())
}

func TestCourseDraftValidateRequiredFields(t *testing.T) {
	d := NewCourseDraft()
	fields := d.Validate()
	require.NotNil(t, fields)

	assert.Equal(t, "Title is required", fields["title"])
	assert.Equal(t, "Description is required", fields["description"])
	assert.Contains(t, fields["thumbnail"], "Thumbnail is required")
	assert.Contains(t, fields, "price")
}

func TestCourseDraftValidatePrice(t *testing.T) {
	d := validCourseDraft()

	d.Price = "-1"
	assert.Contains(t, d.Validate(), "price")

	d.Price = "free"
	assert.Contains(t, d.Validate(), "price")

	d.Price = "0"
	assert.Nil(t, d.Validate())
}

func TestCourseDraftPayloadDropsEmptyDetails(t *testing.T) {
	d := validCourseDraft()

	p, thumb := d.Payload()
	assert.Nil(t, p.Details)
	assert.Equal(t, AttachmentRemote, thumb.Kind())
	assert.Equal(t, 49.99, p.Price)
}

func TestCourseDraftPayloadFiltersBlankRows(t *testing.T) {
	d := validCourseDraft()
	d.Requirements.UpdateAt(0, "Basic algebra")
	d.Requirements.Add()
	d.Requirements.UpdateAt(1, "   ")
	d.Content.UpdateAt(0, "Kinematics")

	p, _ := d.Payload()
	require.NotNil(t, p.Details)
	assert.Equal(t, []string{"Basic algebra"}, p.Details.Requirements)
	assert.Equal(t, []string{"Kinematics"}, p.Details.Content)
}

func TestCourseDraftFromNormalizes(t *testing.T) {
	d := CourseDraftFrom(model.Course{
		Title:       "Chemistry",
		Description: "Atoms and bonds",
		Price:       0,
		Thumbnail:   "thumb.png",
		Details: &model.CourseDetails{
			Duration:     "6 weeks",
			Requirements: []string{"None"},
		},
	})

	// A bare filename is not reusable through the form.
	assert.True(t, d.Thumbnail.IsZero())
	assert.Equal(t, "0", d.Price)
	assert.Equal(t, "6 weeks", d.Duration)
	assert.Equal(t, []string{"None"}, d.Requirements.Entries())

	// The content list still renders one editable blank row.
	assert.Equal(t, 1, d.Content.Len())
}

func TestCourseDraftApply(t *testing.T) {
	d := NewCourseDraft()

	require.NoError(t, d.Apply("title", "Biology"))
	require.NoError(t, d.Apply("details.level", "advanced"))
	assert.Equal(t, "Biology", d.Title)
	assert.Equal(t, "advanced", d.Level)

	assert.Error(t, d.Apply("details.rating", "5"))
}

func TestCourseFormDraftAmbiguousThumbnail(t *testing.T) {
	form := CourseForm{
		Title:       "Math",
		Description: "Numbers",
		Price:       "10",
		Thumbnail: AttachmentInput{
			File: &FileInput{Name: "a.png", Data: []byte{1}},
			URL:  "https://cdn.example.com/a.png",
		},
	}

	_, err := form.Draft()
	assert.ErrorIs(t, err, ErrAttachmentAmbiguous)
}
