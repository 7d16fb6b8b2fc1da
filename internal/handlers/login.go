package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, usuario string) (bool, error)
}

// SessionIssuer signs session cookies for authenticated users.
type SessionIssuer interface {
	Generate(ctx context.Context, usuario string, esAdmin bool) (string, error)
	SetCookie(w http.ResponseWriter, token string)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username from the allowlist
	// required: true
	// default: henkobit
	Usuario string `json:"usuario"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Operation outcome
	// default: true
	Success bool `json:"success"`

	// Whether the session has admin rights
	// default: false
	EsAdmin bool `json:"es_admin"`
}

// NewLoginHandler returns an HTTP handler for username login.
// @Summary Log in
// @Description Checks the username against the allowlist and sets a signed session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session established"
// @Failure 400 {object} handlers.Response "Missing username"
// @Failure 403 {object} handlers.Response "Unknown username"
// @Router /api/login [post]
func NewLoginHandler(svc Loginer, sessions SessionIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Usuario requerido")
			return
		}

		usuario := strings.TrimSpace(req.Usuario)
		if usuario == "" {
			writeError(w, http.StatusBadRequest, "Usuario requerido")
			return
		}

		esAdmin, err := svc.Login(r.Context(), usuario)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotAuthorized):
				writeError(w, http.StatusForbidden, "Usuario no autorizado")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error interno")
			}
			return
		}

		token, err := sessions.Generate(r.Context(), usuario, esAdmin)
		if err != nil {
			logger.Log.Errorw("failed to sign session", "err", err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}
		sessions.SetCookie(w, token)

		writeJSON(w, http.StatusOK, LoginResponse{
			Success: true,
			EsAdmin: esAdmin,
		})
	}
}
