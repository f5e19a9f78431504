package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is stored in the "users" collection (mongo) or the users table
// (postgres). The password hash and reset token never serialize to JSON.
type User struct {
	ID              string    `json:"id" bson:"_id,omitempty" db:"id"`
	Email           string    `json:"email" bson:"email" db:"email"`
	Password        string    `json:"-" bson:"password" db:"password"`
	Role            string    `json:"role" bson:"role" db:"role"`
	ResetToken      string    `json:"-" bson:"reset_token,omitempty" db:"reset_token"`
	EnrolledCourses []string  `json:"enrolled_courses" bson:"enrolled_courses" db:"-"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// IsEnrolled reports whether courseID is already in the user's enrollment
// list.
func (u *User) IsEnrolled(courseID string) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
