package handler

import (
	"net/http"

	"github.com/andrasyah/preferensi-api/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, users *service.UserService, prefs *service.PreferenceService) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(users)
	prefHandler := NewPreferenceHandler(prefs)

	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)

	mux.HandleFunc("GET /users/{id}", userHandler.HandleGet)
	mux.HandleFunc("PUT /users/{id}", userHandler.HandleUpdate)
	mux.HandleFunc("DELETE /users/{id}", userHandler.HandleDelete)

	mux.Handle("POST /preferensi", RequireAuth(auth, http.HandlerFunc(prefHandler.HandleCreate)))
	mux.Handle("GET /preferensi", RequireAuth(auth, http.HandlerFunc(prefHandler.HandleList)))

	mux.Handle("GET /welcome", RequireAuth(auth, http.HandlerFunc(HandleWelcome)))
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /{$}", HandleHome)
}
