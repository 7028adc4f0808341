package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/andrasyah/preferensi-api/internal/domain"
	"github.com/andrasyah/preferensi-api/internal/service"
)

// UserHandler handles user document CRUD requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleGet returns a user document by id, without the password hash.
// GET /users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		slog.Error("get user", "id", id, "error", err)
		http.Error(w, "Error getting user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleUpdate applies a partial merge of the supplied fields onto the
// stored document.
// PUT /users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var fields map[string]any
	if err := readJSON(r, &fields); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.users.Update(r.Context(), id, fields); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		slog.Error("update user", "id", id, "error", err)
		http.Error(w, "Error updating user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("User updated successfully"))
}

// HandleDelete removes a user document. Deleting an id that does not
// exist returns the same success response as deleting one that does.
// DELETE /users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.users.Delete(r.Context(), id); err != nil {
		slog.Error("delete user", "id", id, "error", err)
		http.Error(w, "Error deleting user", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("User deleted successfully"))
}
