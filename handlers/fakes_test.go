package handlers

import (
	"errors"
	"fmt"
	"time"

	"coursecatalog/models"
	"coursecatalog/repository"
)

var errMailDown = errors.New("smtp relay unavailable")

// In-memory repositories backing the handler tests.

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) CreateUser(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.EnrolledCourses == nil {
		user.EnrolledCourses = []string{}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetAllUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) DeleteUser(id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) SetResetToken(id, token string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.ResetToken = token
	return nil
}

func (r *fakeUserRepo) ConsumeResetToken(id, token, newHash string) error {
	u, ok := r.users[id]
	if !ok || u.ResetToken == "" || u.ResetToken != token {
		return repository.ErrNotFound
	}
	u.Password = newHash
	u.ResetToken = ""
	return nil
}

func (r *fakeUserRepo) EnrollCourse(userID, courseID string) error {
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if u.IsEnrolled(courseID) {
		return repository.ErrAlreadyEnrolled
	}
	u.EnrolledCourses = append(u.EnrolledCourses, courseID)
	return nil
}

func (r *fakeUserRepo) DeleteAllUsers() error {
	r.users = make(map[string]*models.User)
	return nil
}

type fakeCourseRepo struct {
	courses map[string]*models.Course
	order   []string
	nextID  int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[string]*models.Course)}
}

func (r *fakeCourseRepo) CreateCourse(course *models.Course) error {
	if course.ID == "" {
		r.nextID++
		course.ID = fmt.Sprintf("course-%d", r.nextID)
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	r.courses[course.ID] = course
	r.order = append(r.order, course.ID)
	return nil
}

func (r *fakeCourseRepo) GetAllCourses() ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.courses[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (r *fakeCourseRepo) GetCourseByID(id string) (*models.Course, error) {
	return r.courses[id], nil
}

func (r *fakeCourseRepo) GetCoursesByIDs(ids []string) ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.courses[id]; ok {
			courses = append(courses, c)
		}
	}
	return courses, nil
}

func (r *fakeCourseRepo) UpdateCourse(id string, course *models.Course) (*models.Course, error) {
	existing, ok := r.courses[id]
	if !ok {
		return nil, nil
	}
	existing.Title = course.Title
	existing.Description = course.Description
	existing.Icon = course.Icon
	return existing, nil
}

func (r *fakeCourseRepo) DeleteCourse(id string) error {
	if _, ok := r.courses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) DeleteAllCourses() error {
	r.courses = make(map[string]*models.Course)
	r.order = nil
	return nil
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to       string
	resetURL string
}

func (m *fakeMailer) SendPasswordReset(to, resetURL string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, resetURL: resetURL})
	return nil
}
