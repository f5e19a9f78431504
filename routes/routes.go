package routes

import (
	"net/http"

	"coursecatalog/auth"
	"coursecatalog/config"
	"coursecatalog/handlers"

	"github.com/gorilla/mux"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	courseHandler *handlers.CourseHandler,
	adminHandler *handlers.AdminHandler,
	transcriptHandler *handlers.TranscriptHandler,
) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	authenticated := auth.Authenticate(cfg.JWTSecret)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return authenticated(auth.RequireAdmin(h))
	}

	// Auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password/{token}", authHandler.ResetPassword).Methods(http.MethodPost)
	api.Handle("/auth/profile", authenticated(http.HandlerFunc(authHandler.Profile))).Methods(http.MethodGet)

	// Course routes
	api.HandleFunc("/courses", courseHandler.ListCourses).Methods(http.MethodGet)
	api.Handle("/courses", adminOnly(courseHandler.CreateCourse)).Methods(http.MethodPost)
	api.Handle("/courses/enroll", authenticated(http.HandlerFunc(courseHandler.Enroll))).Methods(http.MethodPost)
	api.Handle("/courses/{id}", adminOnly(courseHandler.UpdateCourse)).Methods(http.MethodPut)
	api.Handle("/courses/{id}", adminOnly(courseHandler.DeleteCourse)).Methods(http.MethodDelete)

	// Enrolled courses and transcript for the logged-in user
	api.Handle("/users/me/courses", authenticated(http.HandlerFunc(courseHandler.MyCourses))).Methods(http.MethodGet)
	api.Handle("/users/me/transcript", authenticated(http.HandlerFunc(transcriptHandler.Transcript))).Methods(http.MethodGet)

	// Admin user management
	api.Handle("/admin/users", adminOnly(adminHandler.ListUsers)).Methods(http.MethodGet)
	api.Handle("/admin/users/{id}", adminOnly(adminHandler.DeleteUser)).Methods(http.MethodDelete)

	return withCORS(handlers.Recover(r))
}
