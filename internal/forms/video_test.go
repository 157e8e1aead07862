package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoDraftValidateRequiresMediaOnlyWhenNew(t *testing.T) {
	d := NewVideoDraft()
	d.Title = "Lesson 1"
	d.Description = "Introduction"
	d.TeacherID = "t-1"

	fields := d.Validate(true)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "video")

	// Editing keeps the stored media.
	assert.Nil(t, d.Validate(false))

	d.Video = RemoteAttachment("https://cdn.example.com/lesson1.mp4")
	assert.Nil(t, d.Validate(true))
}

func TestVideoDraftValidateRequiredFields(t *testing.T) {
	d := NewVideoDraft()
	fields := d.Validate(true)
	require.NotNil(t, fields)
	assert.Equal(t, "Title is required", fields["title"])
	assert.Equal(t, "Description is required", fields["description"])
	assert.Equal(t, "Please select a teacher", fields["teacherId"])
}

func TestVideoFormDraftDefaultsContentType(t *testing.T) {
	d, err := VideoForm{Title: "x"}.Draft()
	require.NoError(t, err)
	assert.Equal(t, "full", d.ContentType)

	d, err = VideoForm{Title: "x", ContentType: "short"}.Draft()
	require.NoError(t, err)
	assert.Equal(t, "short", d.ContentType)
}

func TestVideoFormDraftRejectsAmbiguousMedia(t *testing.T) {
	_, err := VideoForm{
		Video: AttachmentInput{
			File: &FileInput{Name: "v.mp4", Data: []byte{1}},
			URL:  "https://cdn.example.com/v.mp4",
		},
	}.Draft()
	assert.ErrorIs(t, err, ErrAttachmentAmbiguous)
}
