package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"vipgraph/internal/domain"
	"vipgraph/internal/service"
)

type contextKey string

const authContextKey contextKey = "auth"

// AuthFromContext returns the caller's resolved identity, if any.
func AuthFromContext(ctx context.Context) (domain.AuthContext, bool) {
	auth, ok := ctx.Value(authContextKey).(domain.AuthContext)
	return auth, ok
}

// AuthHandler handles login and logout
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and sets the session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// One generic failure for wrong password and unknown email alike.
		writeError(w, "Login failed", "", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// Logout closes the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		h.svc.Logout(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}

// RequireLogin resolves the session cookie into an AuthContext and rejects
// unauthenticated requests. Core handlers below this guard never touch
// session state themselves.
func (h *AuthHandler) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			writeError(w, "Login required", "", http.StatusUnauthorized)
			return
		}

		auth, ok := h.svc.Resolve(cookie.Value)
		if !ok {
			writeError(w, "Login required", "", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), authContextKey, auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSuperadmin is RequireLogin plus a superadmin check
func (h *AuthHandler) RequireSuperadmin(next http.Handler) http.Handler {
	return h.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, _ := AuthFromContext(r.Context())
		if !auth.IsSuperadmin {
			writeError(w, "Superadmin required", "", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
