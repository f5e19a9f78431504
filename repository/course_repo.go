package repository

import "coursecatalog/models"

// CourseRepository defines the interface for course operations
type CourseRepository interface {
	CreateCourse(course *models.Course) error
	GetAllCourses() ([]*models.Course, error)
	// GetCourseByID returns (nil, nil) when no course matches.
	GetCourseByID(id string) (*models.Course, error)
	// GetCoursesByIDs resolves enrollment references in order, silently
	// skipping ids that no longer exist (a deleted course leaves its
	// enrollment references dangling).
	GetCoursesByIDs(ids []string) ([]*models.Course, error)
	// UpdateCourse returns (nil, nil) when the id does not exist.
	UpdateCourse(id string, course *models.Course) (*models.Course, error)
	// DeleteCourse returns ErrNotFound when the id does not exist.
	DeleteCourse(id string) error

	// DeleteAllCourses is used by the seed command.
	DeleteAllCourses() error
}
