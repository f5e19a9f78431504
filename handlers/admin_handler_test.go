package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursecatalog/models"

	"github.com/gorilla/mux"
)

func TestListUsersStripsPasswords(t *testing.T) {
	repo := newFakeUserRepo()
	if err := repo.CreateUser(&models.User{Email: "a@x.com", Password: "hash", Role: models.RoleStudent}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	h := &AdminHandler{Users: repo}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	h.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var users []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("users: got %d, want 1", len(users))
	}
	if _, ok := users[0]["password"]; ok {
		t.Error("user listing contains password field")
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := &models.User{Email: "a@x.com", Password: "hash", Role: models.RoleStudent}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	h := &AdminHandler{Users: repo}

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "existing user", id: user.ID, wantStatus: http.StatusOK},
		{name: "already deleted", id: user.ID, wantStatus: http.StatusNotFound},
		{name: "unknown id", id: "missing", wantStatus: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/"+test.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": test.id})
			rec := httptest.NewRecorder()
			h.DeleteUser(rec, req)

			if rec.Code != test.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, test.wantStatus)
			}
		})
	}
}
