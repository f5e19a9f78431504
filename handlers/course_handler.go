package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"coursecatalog/auth"
	"coursecatalog/models"
	"coursecatalog/repository"

	"github.com/gorilla/mux"
)

type CourseHandler struct {
	Courses repository.CourseRepository
	Users   repository.UserRepository
}

// ListCourses is public; it always returns an array, never null.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Courses.GetAllCourses()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}

type courseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CreateCourse handler (admin only, enforced by middleware)
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Title == "" || req.Description == "" || req.Icon == "" {
		writeMessage(w, http.StatusBadRequest, "Title, description, and icon are required.")
		return
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := h.Courses.CreateCourse(course); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusCreated, course)
}

// UpdateCourse handler (admin only)
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req courseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	updated, err := h.Courses.UpdateCourse(id, &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if updated == nil {
		writeMessage(w, http.StatusNotFound, "Course not found.")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCourse handler (admin only). Enrollment references to the deleted
// course are left in place; listing skips them.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Courses.DeleteCourse(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Course not found.")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeMessage(w, http.StatusOK, "Course deleted successfully.")
}

type enrollRequest struct {
	CourseID string `json:"courseId"`
}

// Enroll adds the caller to a course. Only students enroll; a second
// attempt for the same course is a conflict.
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Users.GetUserByID(claims.UserID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	course, err := h.Courses.GetCourseByID(req.CourseID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if user == nil || course == nil {
		writeMessage(w, http.StatusNotFound, "User or course not found.")
		return
	}

	if user.Role != models.RoleStudent {
		writeMessage(w, http.StatusForbidden, "Only students can enroll in courses.")
		return
	}

	if user.IsEnrolled(course.ID) {
		writeMessage(w, http.StatusConflict, "You are already enrolled in this course.")
		return
	}

	if err := h.Users.EnrollCourse(user.ID, course.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyEnrolled) {
			// Lost a race with a concurrent enroll for the same pair.
			writeMessage(w, http.StatusConflict, "You are already enrolled in this course.")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeMessage(w, http.StatusOK, "Enrolled successfully.")
}

type enrolledCoursesResponse struct {
	Courses []*models.Course `json:"courses"`
}

// MyCourses resolves the caller's enrollment references to full course
// records. Available to any authenticated role.
func (h *CourseHandler) MyCourses(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	user, err := h.Users.GetUserByID(claims.UserID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}

	courses, err := h.Courses.GetCoursesByIDs(user.EnrolledCourses)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if courses == nil {
		courses = []*models.Course{}
	}

	writeJSON(w, http.StatusOK, enrolledCoursesResponse{Courses: courses})
}
