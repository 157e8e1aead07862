package model

// Video represents a standalone video record as owned by the platform.
type Video struct {
	ID             string `json:"_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category,omitempty"`
	CustomCategory string `json:"customCategory,omitempty"`
	ContentType    string `json:"contentType,omitempty"`
	VideoURL       string `json:"videoUrl,omitempty"`
	ThumbnailURL   string `json:"thumbnailUrl,omitempty"`
	UploadedBy     string `json:"uploadedBy,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
}
