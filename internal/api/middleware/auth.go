package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// SessionName is the cookie session used by browser clients
const SessionName = "quill_session"

// AuthMiddleware enforces authentication for protected routes.
// Two legs, checked in order:
//  1. Authorization: Bearer <jwt> - HS256 access token, subject = user id
//  2. quill_session cookie - server-side session carrying the user id
//
// On success the user id is injected into the request context; everything
// downstream treats it as the verified actor identity.
type AuthMiddleware struct {
	secret       []byte
	sessionStore sessions.Store
}

// NewAuthMiddleware creates the auth middleware.
// secret signs/verifies access tokens; sessionStore backs cookie sessions.
func NewAuthMiddleware(secret []byte, sessionStore sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		secret:       secret,
		sessionStore: sessionStore,
	}
}

// RequireAuth ensures the request carries a valid identity.
// Returns 401 otherwise; on success injects the user id into context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := m.fromBearerToken(r); ok {
			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
			return
		}

		if userID, ok := m.fromSession(r); ok {
			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
			return
		}

		log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s", r.RemoteAddr, r.Method, r.URL.Path)
		http.Error(w, "Authentication required", http.StatusUnauthorized)
	})
}

// fromBearerToken verifies an HS256 access token from the Authorization header
func (m *AuthMiddleware) fromBearerToken(r *http.Request) (int64, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, m.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		log.Printf("[AUTH_FAILURE] type=token_invalid ip=%s error=%v", r.RemoteAddr, err)
		return 0, false
	}

	userID, err := strconv.ParseInt(tok.Subject(), 10, 64)
	if err != nil || userID <= 0 {
		log.Printf("[AUTH_FAILURE] type=bad_subject ip=%s sub=%q", r.RemoteAddr, tok.Subject())
		return 0, false
	}

	return userID, true
}

// fromSession reads the user id from the cookie session
func (m *AuthMiddleware) fromSession(r *http.Request) (int64, bool) {
	session, err := m.sessionStore.Get(r, SessionName)
	if err != nil || session.IsNew {
		return 0, false
	}

	userID, ok := session.Values["user_id"].(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID returns the authenticated user id from the request context,
// or 0 when the request was not authenticated
func GetUserID(r *http.Request) int64 {
	userID, _ := r.Context().Value(UserIDKey).(int64)
	return userID
}
