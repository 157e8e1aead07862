package model

import "encoding/json"

// Teacher represents a teacher record as owned by the platform.
type Teacher struct {
	ID                string           `json:"_id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	CanCreatePaidQuiz bool             `json:"canCreatePaidQuiz"`
	Verification      *TeacherKYCState `json:"teacherVerification,omitempty"`
	FinancialStats    json.RawMessage  `json:"financialStats,omitempty"`
	CreatedAt         string           `json:"createdAt,omitempty"`
}

// TeacherKYCState is the embedded verification summary on a teacher record.
type TeacherKYCState struct {
	Status string `json:"status"`
}

// UpdateTeacherRequest is the console payload for editing a teacher.
type UpdateTeacherRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}

// PaidQuizPermissionRequest toggles a teacher's paid-quiz permission.
type PaidQuizPermissionRequest struct {
	CanCreatePaidQuiz *bool `json:"canCreatePaidQuiz" binding:"required"`
}

// PaidQuizStatus is one row of the paid-quiz-status overview.
type PaidQuizStatus struct {
	TeacherID         string `json:"teacherId"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	CanCreatePaidQuiz bool   `json:"canCreatePaidQuiz"`
}
