package repository

import "coursecatalog/models"

// UserRepository defines the interface for user operations
type UserRepository interface {
	// CreateUser stores a new user; the password must already be hashed.
	// Returns ErrDuplicateEmail when the email is taken.
	CreateUser(user *models.User) error
	// GetUserByEmail returns (nil, nil) when no user matches.
	GetUserByEmail(email string) (*models.User, error)
	// GetUserByID returns (nil, nil) when no user matches.
	GetUserByID(id string) (*models.User, error)
	GetAllUsers() ([]*models.User, error)
	// DeleteUser returns ErrNotFound when the id does not exist.
	DeleteUser(id string) error

	// SetResetToken stores a pending password-reset token on the user.
	SetResetToken(id, token string) error
	// ConsumeResetToken atomically replaces the password hash and clears
	// the reset token, matching on both user id and the stored token.
	// Returns ErrNotFound when no user holds that token.
	ConsumeResetToken(id, token, newHash string) error

	// EnrollCourse appends courseID to the user's enrollments. The write
	// is atomic on both backends: two racing calls for the same pair
	// cannot both succeed; the loser gets ErrAlreadyEnrolled.
	EnrollCourse(userID, courseID string) error

	// DeleteAllUsers is used by the seed command.
	DeleteAllUsers() error
}
