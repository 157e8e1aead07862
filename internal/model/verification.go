package model

// VerificationRole selects which population a KYC request belongs to.
type VerificationRole string

const (
	VerificationRoleTeacher VerificationRole = "teacher"
	VerificationRoleStudent VerificationRole = "student"
)

// Valid reports whether the role is one of the two supported populations.
func (r VerificationRole) Valid() bool {
	return r == VerificationRoleTeacher || r == VerificationRoleStudent
}

// VerificationRequest is a pending or processed KYC submission.
type VerificationRequest struct {
	ID          string                 `json:"_id"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Status      string                 `json:"status"`
	Documents   []VerificationDocument `json:"documents,omitempty"`
	SubmittedAt string                 `json:"submittedAt,omitempty"`
	ReviewedAt  string                 `json:"reviewedAt,omitempty"`
}

// VerificationDocument is one uploaded identity document reference.
type VerificationDocument struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// RejectVerificationRequest carries the mandatory rejection reason.
type RejectVerificationRequest struct {
	Reason string `json:"reason" binding:"required,min=1"`
}
