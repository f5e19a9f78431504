package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursecatalog/auth"
	"coursecatalog/config"
	"coursecatalog/handlers"
	"coursecatalog/models"
)

const testSecret = "routes-test-secret"

// stubCourseRepo satisfies repository.CourseRepository for routing tests;
// requests rejected by middleware never reach it.
type stubCourseRepo struct{}

func (stubCourseRepo) CreateCourse(course *models.Course) error        { return nil }
func (stubCourseRepo) GetAllCourses() ([]*models.Course, error)        { return nil, nil }
func (stubCourseRepo) GetCourseByID(id string) (*models.Course, error) { return nil, nil }
func (stubCourseRepo) GetCoursesByIDs(ids []string) ([]*models.Course, error) {
	return nil, nil
}
func (stubCourseRepo) UpdateCourse(id string, course *models.Course) (*models.Course, error) {
	return nil, nil
}
func (stubCourseRepo) DeleteCourse(id string) error { return nil }
func (stubCourseRepo) DeleteAllCourses() error      { return nil }

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{JWTSecret: testSecret}
	courseHandler := &handlers.CourseHandler{Courses: stubCourseRepo{}}
	return SetupRoutes(cfg,
		&handlers.AuthHandler{JWTSecret: testSecret},
		courseHandler,
		&handlers.AdminHandler{},
		&handlers.TranscriptHandler{},
	)
}

func TestRouteProtection(t *testing.T) {
	handler := testHandler(t)

	studentToken, err := auth.CreateAccessToken(&models.User{
		ID: "user-1", Email: "s@x.com", Role: models.RoleStudent,
	}, testSecret)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{
			name:       "course list is public",
			method:     http.MethodGet,
			target:     "/api/courses",
			wantStatus: http.StatusOK,
		},
		{
			name:       "course create needs a token",
			method:     http.MethodPost,
			target:     "/api/courses",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "course create needs admin",
			method:     http.MethodPost,
			target:     "/api/courses",
			token:      studentToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin listing needs admin",
			method:     http.MethodGet,
			target:     "/api/admin/users",
			token:      studentToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "profile needs a token",
			method:     http.MethodGet,
			target:     "/api/auth/profile",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "preflight is allowed through",
			method:     http.MethodOptions,
			target:     "/api/courses",
			wantStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.target, strings.NewReader("{}"))
			if test.token != "" {
				req.Header.Set("Authorization", "Bearer "+test.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != test.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, test.wantStatus)
			}
		})
	}
}
