package model

// Student represents a student record as owned by the platform.
type Student struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	IsVerified bool   `json:"isVerified,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// UpdateStudentRequest is the console payload for editing a student.
type UpdateStudentRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}
