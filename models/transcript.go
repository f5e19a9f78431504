package models

// TranscriptData feeds the enrollment transcript HTML template.
type TranscriptData struct {
	Email       string
	Role        string
	Courses     []*Course
	CourseCount int
	GeneratedAt string
}
