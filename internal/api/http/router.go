package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const sessionCookie = "session_id"

type contextKey string

const sessionKey contextKey = "session"

// NewRouter wires the handler routes behind the session middleware and the
// CORS layer.
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(withSession)
	h.RegisterRoutes(r)

	return cors.New(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowCredentials: true,
		AllowOriginFunc:  func(origin string) bool { return true },
	}).Handler(r)
}

// withSession assigns each diner a session id cookie. The id scopes the
// ledger, the category filter and the handoff slot.
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			id = cookie.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
	})
}

// sessionID returns the request's session id, empty when the middleware did
// not run (direct handler tests).
func sessionID(r *http.Request) string {
	if id, ok := r.Context().Value(sessionKey).(string); ok {
		return id
	}
	return ""
}
