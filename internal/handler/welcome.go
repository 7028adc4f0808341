package handler

import "net/http"

const welcomeMessage = "Welcome 🙌"

// HandleWelcome greets an authenticated caller. The route only exists
// to exercise the auth gate.
// GET /welcome
func HandleWelcome(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(welcomeMessage))
}

// HandleHome greets anyone.
// GET /
func HandleHome(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(welcomeMessage))
}
