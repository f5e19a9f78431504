package repository

import "errors"

var (
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrNotFound        = errors.New("not found")
)
