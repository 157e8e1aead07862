package model

// Course represents a course record as owned by the platform.
type Course struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Price       float64        `json:"price"`
	Details     *CourseDetails `json:"details,omitempty"`
	TeacherID   string         `json:"teacherId,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`
}

// CourseDetails holds the optional descriptive block of a course.
type CourseDetails struct {
	Duration     string   `json:"duration,omitempty"`
	Level        string   `json:"level,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Content      []string `json:"content,omitempty"`
}

// CoursePayload is the shaped course body sent upstream. Empty optional
// fields are already dropped; the thumbnail travels separately as an
// attachment inside the multipart form.
type CoursePayload struct {
	Title       string
	Description string
	Price       float64
	Details     *CourseDetails
}
