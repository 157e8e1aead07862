package model

// PlaylistItem is one ordered entry of a course playlist. Items live and die
// independently of the parent course form's save lifecycle.
type PlaylistItem struct {
	ID           string `json:"_id"`
	CourseID     string `json:"courseId,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ContentType  string `json:"contentType"`
	Category     string `json:"category"`
	IsFree       bool   `json:"isFree"`
	Order        int    `json:"order,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
