package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"symptomintake/internal/service"
)

type contextKey string

const (
	SessionIDKey    contextKey = "sessionId"
	SessionTokenKey contextKey = "sessionToken"
)

// Session transport names
const (
	SessionHeader = "X-Session-Token"
	SessionCookie = "intake_session"
)

// SessionMiddleware binds every request to an intake session
type SessionMiddleware struct {
	authSvc *service.AuthService
	ttl     time.Duration
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(authSvc *service.AuthService, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{authSvc: authSvc, ttl: ttl}
}

// Resolve reads the session token from the Authorization header, the
// X-Session-Token header or the session cookie. A missing or invalid token
// starts a new session. The token in use is echoed back on the response.
func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		token := extractToken(r)
		if token != "" {
			if claims, err := m.authSvc.ValidateSessionToken(token); err == nil {
				sessionID = claims.SessionID
			}
		}
		if sessionID == "" {
			var err error
			sessionID, token, err = m.authSvc.NewSession()
			if err != nil {
				http.Error(w, `{"error":"failed to start session"}`, http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set(SessionHeader, token)
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		ctx = context.WithValue(ctx, SessionTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID extracts the session ID from context
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetSessionToken extracts the session token from context
func GetSessionToken(ctx context.Context) string {
	if v := ctx.Value(SessionTokenKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractToken(r *http.Request) string {
	if token := extractBearerToken(r); token != "" {
		return token
	}
	if token := strings.TrimSpace(r.Header.Get(SessionHeader)); token != "" {
		return token
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
