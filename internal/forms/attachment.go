package forms

import "errors"

// Attachment errors.
var (
	ErrAttachmentEmpty     = errors.New("attachment required")
	ErrAttachmentAmbiguous = errors.New("attachment is both a file and a URL")
)

// AttachmentKind discriminates the attachment union.
type AttachmentKind int

const (
	AttachmentNone AttachmentKind = iota
	AttachmentFile
	AttachmentRemote
)

// Attachment is a tagged union: an uploaded file or a remote URL, never both.
// The zero value is empty.
type Attachment struct {
	kind     AttachmentKind
	filename string
	data     []byte
	url      string
}

// FileAttachment wraps uploaded file bytes.
func FileAttachment(filename string, data []byte) Attachment {
	return Attachment{kind: AttachmentFile, filename: filename, data: data}
}

// RemoteAttachment wraps an already-hosted URL.
func RemoteAttachment(url string) Attachment {
	return Attachment{kind: AttachmentRemote, url: url}
}

// Kind reports which arm of the union is populated.
func (a Attachment) Kind() AttachmentKind { return a.kind }

// IsZero reports whether nothing was attached.
func (a Attachment) IsZero() bool { return a.kind == AttachmentNone }

// Filename returns the uploaded filename, or "" for non-file attachments.
func (a Attachment) Filename() string { return a.filename }

// Data returns the uploaded bytes, or nil for non-file attachments.
func (a Attachment) Data() []byte { return a.data }

// URL returns the remote URL, or "" for non-remote attachments.
func (a Attachment) URL() string { return a.url }

// SetFile switches the union to the file arm, discarding any URL.
func (a *Attachment) SetFile(filename string, data []byte) {
	*a = FileAttachment(filename, data)
}

// SetURL switches the union to the remote arm, discarding any file.
func (a *Attachment) SetURL(url string) {
	*a = RemoteAttachment(url)
}

// Clear empties the attachment.
func (a *Attachment) Clear() { *a = Attachment{} }

// FileInput is the wire form of an uploaded file; Data is base64 on the wire.
type FileInput struct {
	Name string `json:"name"`
	Data []byte `json:"data"`
}

// AttachmentInput is the wire form of the file-or-URL union. The original
// form clears one side when the other is chosen; a request carrying both is
// therefore malformed.
type AttachmentInput struct {
	File *FileInput `json:"file,omitempty"`
	URL  string     `json:"url,omitempty"`
}

// Attachment resolves the input into the union. An empty input yields the
// zero attachment without error; requiredness is a per-form validation rule.
func (in AttachmentInput) Attachment() (Attachment, error) {
	hasFile := in.File != nil && len(in.File.Data) > 0
	if hasFile && in.URL != "" {
		return Attachment{}, ErrAttachmentAmbiguous
	}
	if hasFile {
		return FileAttachment(in.File.Name, in.File.Data), nil
	}
	if in.URL != "" {
		return RemoteAttachment(in.URL), nil
	}
	return Attachment{}, nil
}
