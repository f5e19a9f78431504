package handlers

import (
	"errors"
	"net/http"

	"coursecatalog/models"
	"coursecatalog/repository"

	"github.com/gorilla/mux"
)

type AdminHandler struct {
	Users repository.UserRepository
}

// ListUsers returns every user; password hashes never serialize.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// DeleteUser removes a user account and, with it, their enrollments.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Users.DeleteUser(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found.")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeMessage(w, http.StatusOK, "User deleted successfully.")
}
