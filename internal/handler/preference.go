package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/andrasyah/preferensi-api/internal/service"
)

// PreferenceHandler handles preference creation and listing. Both
// routes run behind RequireAuth; the acting user id derives from the
// verified token, never from the client.
type PreferenceHandler struct {
	prefs *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(prefs *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

// HandleCreate stores a new preference under the authenticated user.
// POST /preferensi
// Request:  {"name":"...","ambience":"...","utils":"...","view":"...","userId":"..."}
// Response: 200 {"success":true,"message":"...","preferensiResult":{...}}
//
// A client-supplied userId that disagrees with the token subject is
// rejected with 403.
func (h *PreferenceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req struct {
		UserID   string `json:"userId"`
		Name     string `json:"name"`
		Ambience string `json:"ambience"`
		Utils    string `json:"utils"`
		View     string `json:"view"`
	}
	if err := readJSON(r, &req); err != nil {
		writeResult(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.UserID != "" && req.UserID != claims.UserID {
		writeResult(w, http.StatusForbidden, false, "Cannot act on another user")
		return
	}

	pref, err := h.prefs.Create(r.Context(), claims.UserID, req.Name, req.Ambience, req.Utils, req.View)
	if err != nil {
		slog.Error("create preference", "userId", claims.UserID, "error", err)
		writeResult(w, http.StatusInternalServerError, false, "Gagal menambahkan preferensi")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Berhasil menambahkan preferensi",
		"preferensiResult": map[string]any{
			"preferensiId": pref.ID,
			"name":         pref.Name,
			"ambience":     pref.Ambience,
			"utils":        pref.Utils,
			"view":         pref.View,
			"userId":       pref.UserID,
		},
	})
}

// HandleList returns every preference of the authenticated user, each
// annotated with its store-assigned id.
// GET /preferensi
//
// A userId may still arrive in the body for compatibility; it must
// match the token subject.
func (h *PreferenceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req struct {
		UserID string `json:"userId"`
	}
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeResult(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.UserID != "" && req.UserID != claims.UserID {
		writeResult(w, http.StatusForbidden, false, "Cannot act on another user")
		return
	}

	prefs, err := h.prefs.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("list preferences", "userId", claims.UserID, "error", err)
		writeResult(w, http.StatusInternalServerError, false, "Gagal mengambil preferensi")
		return
	}

	writeJSON(w, http.StatusOK, toPreferenceDTOs(prefs))
}
