package upstream

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/lernia/console-backend/internal/forms"
)

// Form assembles a multipart/form-data body for file-bearing requests.
type Form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

// NewForm creates an empty multipart form.
func NewForm() *Form {
	f := &Form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

// Field writes one text field.
func (f *Form) Field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(name, value)
}

// OptionalField writes a text field only when value is non-empty, matching
// the form-assembly convention of dropping empty optionals.
func (f *Form) OptionalField(name, value string) {
	if value == "" {
		return
	}
	f.Field(name, value)
}

// Repeated writes an array field as repeated entries.
func (f *Form) Repeated(name string, values []string) {
	for _, v := range values {
		f.Field(name, v)
	}
}

// File writes one uploaded file part.
func (f *Form) File(name, filename string, data []byte) {
	if f.err != nil {
		return
	}
	part, err := f.w.CreateFormFile(name, filename)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(data)
}

// Attachment writes the populated arm of a file-or-URL union: files become
// file parts, remote URLs plain text fields under the same name. Empty
// attachments write nothing.
func (f *Form) Attachment(name string, a forms.Attachment) {
	switch a.Kind() {
	case forms.AttachmentFile:
		filename := a.Filename()
		if filename == "" {
			filename = name
		}
		f.File(name, filename, a.Data())
	case forms.AttachmentRemote:
		f.Field(name, a.URL())
	}
}

// Encode finalizes the form and returns the body reader plus content type.
func (f *Form) Encode() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", fmt.Errorf("assemble form: %w", f.err)
	}
	if err := f.w.Close(); err != nil {
		return nil, "", fmt.Errorf("close form: %w", err)
	}
	return &f.buf, f.w.FormDataContentType(), nil
}
