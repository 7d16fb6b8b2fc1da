package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/session"
)

// Sessioner defines the minimal interface needed by the auth middleware.
type Sessioner interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (*session.Session, error)
}

// errorBody is the JSON envelope every rejected request receives.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Success: false, Message: message})
}

// AuthMiddleware validates the session cookie and stores the session
// in the request context.
func AuthMiddleware(sessions Sessioner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := sessions.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "No autorizado")
				return
			}

			sess, err := sessions.Parse(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "No autorizado")
				return
			}

			next.ServeHTTP(w, r.WithContext(setSessionToContext(ctx, sess)))
		})
	}
}

// AdminMiddleware rejects requests whose session lacks the admin flag.
// It must run after AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := GetSessionFromContext(r.Context())
		if sess == nil || !sess.EsAdmin {
			logger.Log.Errorw("admin authorization failed", "session", sess)
			writeAuthError(w, http.StatusForbidden, "No autorizado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// setSessionToContext stores a session in the context.
func setSessionToContext(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSessionFromContext retrieves the session from the context. Returns nil if not present.
func GetSessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey).(*session.Session)
	return sess
}
