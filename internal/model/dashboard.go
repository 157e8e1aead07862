package model

// DashboardStats is the aggregate counters block shown on the landing screen.
// All values are computed by the platform.
type DashboardStats struct {
	TotalStudents int `json:"totalStudents"`
	TotalTeachers int `json:"totalTeachers"`
	TotalCourses  int `json:"totalCourses"`
	TotalTests    int `json:"totalTests"`
}
