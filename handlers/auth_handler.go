package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"coursecatalog/auth"
	"coursecatalog/models"
	"coursecatalog/repository"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

// genericResetMessage is returned for every forgot-password request so the
// response never reveals whether the email exists.
const genericResetMessage = "If a matching account was found, a password reset link has been sent to your email."

// Mailer dispatches the password-reset email.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

type AuthHandler struct {
	Repo        repository.UserRepository
	Mailer      Mailer
	JWTSecret   string
	FrontendURL string
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a student account; the role is never taken from the
// request.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleStudent,
	}
	if err := h.Repo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeMessage(w, http.StatusConflict, "Email already registered.")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeMessage(w, http.StatusCreated, "User registered successfully.")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// Login checks credentials and the requested role, then issues a session
// token. Unknown email and wrong password produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Repo.GetUserByEmail(req.Email)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid email or password.")
		return
	}

	if user.Role != req.Role {
		writeMessage(w, http.StatusForbidden, "Access denied.")
		return
	}

	token, err := auth.CreateAccessToken(user, h.JWTSecret)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: user.ID, Email: user.Email, Role: user.Role},
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword always answers with the generic confirmation; when the
// account exists it stores a reset token and emails the reset link. Mail
// failures are logged, never surfaced.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Repo.GetUserByEmail(req.Email)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusOK, genericResetMessage)
		return
	}

	token, err := auth.CreateResetToken(user.ID, h.JWTSecret)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if err := h.Repo.SetResetToken(user.ID, token); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", h.FrontendURL, token)
	if err := h.Mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		log.Printf("error sending password reset email to %s: %v", user.Email, err)
	}

	writeMessage(w, http.StatusOK, genericResetMessage)
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ResetPassword consumes a reset token from the URL path and sets the new
// password. A token that was already used matches no stored record.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, "New password is required.")
		return
	}

	userID, err := auth.VerifyResetToken(token, h.JWTSecret)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid or expired token.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	if err := h.Repo.ConsumeResetToken(userID, token, string(hashed)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMessage(w, http.StatusBadRequest, "Invalid or expired token.")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeMessage(w, http.StatusOK, "Password has been reset successfully.")
}

// Profile returns the authenticated user's record; the password hash and
// reset token are excluded by the model's JSON tags.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	user, err := h.Repo.GetUserByID(claims.UserID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if user == nil {
		writeMessage(w, http.StatusNotFound, "User not found.")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
