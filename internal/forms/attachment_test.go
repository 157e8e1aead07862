package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentUnionIsExclusive(t *testing.T) {
	var a Attachment
	assert.True(t, a.IsZero())

	a.SetFile("doc.pdf", []byte("bytes"))
	assert.Equal(t, AttachmentFile, a.Kind())
	assert.Equal(t, "doc.pdf", a.Filename())
	assert.Empty(t, a.URL())

	a.SetURL("https://cdn.example.com/doc.pdf")
	assert.Equal(t, AttachmentRemote, a.Kind())
	assert.Empty(t, a.Filename())
	assert.Nil(t, a.Data())

	a.Clear()
	assert.True(t, a.IsZero())
}

func TestAttachmentInputResolution(t *testing.T) {
	got, err := AttachmentInput{}.Attachment()
	assert.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = AttachmentInput{URL: "https://cdn.example.com/x.png"}.Attachment()
	assert.NoError(t, err)
	assert.Equal(t, AttachmentRemote, got.Kind())

	got, err = AttachmentInput{File: &FileInput{Name: "x.png", Data: []byte{1, 2}}}.Attachment()
	assert.NoError(t, err)
	assert.Equal(t, AttachmentFile, got.Kind())

	_, err = AttachmentInput{
		File: &FileInput{Name: "x.png", Data: []byte{1}},
		URL:  "https://cdn.example.com/x.png",
	}.Attachment()
	assert.ErrorIs(t, err, ErrAttachmentAmbiguous)
}

func TestStringListMinimumRows(t *testing.T) {
	l := NewStringList(1)
	assert.Equal(t, 1, l.Len())

	// Removing the last row is a no-op.
	assert.False(t, l.RemoveAt(0))
	assert.Equal(t, 1, l.Len())

	l.Add()
	l.UpdateAt(0, "first")
	l.UpdateAt(1, "second")
	assert.True(t, l.RemoveAt(0))
	assert.Equal(t, []string{"second"}, l.Entries())
}

func TestStringListFilled(t *testing.T) {
	l := NewStringList(1, "  keep me  ", "", "   ", "also keep")
	assert.Equal(t, []string{"keep me", "also keep"}, l.Filled())
}

func TestOptionSetFilledCount(t *testing.T) {
	var o OptionSet
	assert.Equal(t, 0, o.FilledCount())

	o.UpdateAt(0, "a")
	o.UpdateAt(1, "  ")
	o.UpdateAt(2, "c")
	o.UpdateAt(3, "d")
	assert.Equal(t, 3, o.FilledCount())

	o.UpdateAt(1, "b")
	assert.Equal(t, 4, o.FilledCount())
	assert.Equal(t, []string{"a", "b", "c", "d"}, o.Trimmed())
}
