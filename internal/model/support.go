package model

// SupportContent is a published help/FAQ document for one audience.
type SupportContent struct {
	ID          string           `json:"_id"`
	Type        string           `json:"type"`
	TargetRole  string           `json:"targetRole"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	IsActive    bool             `json:"isActive"`
	Sections    []SupportSection `json:"sections,omitempty"`
	ContactInfo *ContactInfo     `json:"contactInfo,omitempty"`
	Attachments []string         `json:"attachments,omitempty"`
	UpdatedAt   string           `json:"updatedAt,omitempty"`
}

// SupportSection is one titled block inside a support document.
type SupportSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// ContactInfo is the support contact block attached to a document.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
}

// FeedbackEntry is a user-submitted feedback or complaint.
type FeedbackEntry struct {
	ID            string            `json:"_id"`
	Type          string            `json:"type"`
	Subject       string            `json:"subject"`
	Message       string            `json:"message"`
	Rating        int               `json:"rating,omitempty"`
	Status        string            `json:"status"`
	User          *FeedbackUser     `json:"userId,omitempty"`
	AdminResponse *FeedbackResponse `json:"adminResponse,omitempty"`
	Attachments   []string          `json:"attachments,omitempty"`
	CreatedAt     string            `json:"createdAt,omitempty"`
}

// FeedbackUser is the populated author reference on a feedback entry.
type FeedbackUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FeedbackResponse is the admin reply stored on a feedback entry.
type FeedbackResponse struct {
	Message     string `json:"message"`
	RespondedAt string `json:"respondedAt,omitempty"`
}

// RespondFeedbackRequest is the console payload for replying to feedback.
type RespondFeedbackRequest struct {
	Response string `json:"response" binding:"required,min=1"`
}
