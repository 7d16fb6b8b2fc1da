package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "inventario_session"

// Session holds the identity carried by a signed session cookie.
type Session struct {
	Usuario string
	EsAdmin bool
}

// Manager signs and verifies session cookies.
type Manager struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Session lifetime
}

// New creates a new session Manager.
func New(secretKey string, expiration time.Duration) *Manager {
	return &Manager{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token for the given user.
func (m *Manager) Generate(ctx context.Context, usuario string, esAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"usuario":  usuario,
		"es_admin": esAdmin,
		"exp":      time.Now().Add(m.Exp).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.SecretKey))
}

// Parse validates the token string and returns the session it carries.
func (m *Manager) Parse(ctx context.Context, tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	usuario, ok := claims["usuario"].(string)
	if !ok || usuario == "" {
		return nil, errors.New("usuario not found in token")
	}
	esAdmin, _ := claims["es_admin"].(bool)

	return &Session{Usuario: usuario, EsAdmin: esAdmin}, nil
}

// GetTokenFromRequest extracts the session token from the request cookie.
func (m *Manager) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", errors.New("session cookie missing")
	}
	if cookie.Value == "" {
		return "", errors.New("session cookie empty")
	}
	return cookie.Value, nil
}

// SetCookie writes the signed session cookie to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.Exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
