package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userdir/internal/core"
	"userdir/internal/logging"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListUsers returns the whole directory.
//
// GET /api/users
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.service.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	if users == nil {
		users = []core.User{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// handleCreateUser creates a single user from a JSON body.
//
// POST /api/users
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var fields core.UserFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.service.CreateUser(r.Context(), fields)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("user created", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

// handleUpdateUser replaces the fields of an existing user.
//
// PUT /api/users/{id}
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields core.UserFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.service.UpdateUser(r.Context(), id, fields)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("user updated", "user_id", id)
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// handleDeleteUser removes a user.
//
// DELETE /api/users/{id}
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.service.DeleteUser(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("user deleted", "user_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
