package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
	"github.com/henkobit/inventario/internal/services"
)

// UserLister defines the interface for listing users.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserCreator defines the interface for creating users.
type UserCreator interface {
	Create(ctx context.Context, nombreUsuario string) (int64, error)
}

// UserDeleter defines the interface for deleting users.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username to add to the allowlist
	// required: true
	// default: operario1
	NombreUsuario string `json:"nombre_usuario"`
}

// CreateUserResponse represents a successful user creation
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// NewListarUsuariosHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags usuarios
// @Produce json
// @Success 200 {array} models.User
// @Router /api/admin/usuarios [get]
func NewListarUsuariosHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewCrearUsuarioHandler returns an HTTP handler that adds a user to the allowlist.
// @Summary Create user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "New username"
// @Success 200 {object} handlers.CreateUserResponse
// @Failure 400 {object} handlers.Response "Missing or duplicate username"
// @Router /api/admin/usuarios [post]
func NewCrearUsuarioHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Nombre de usuario requerido")
			return
		}

		nombre := strings.TrimSpace(req.NombreUsuario)
		if nombre == "" {
			writeError(w, http.StatusBadRequest, "Nombre de usuario requerido")
			return
		}

		id, err := svc.Create(r.Context(), nombre)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "El usuario ya existe")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error interno")
			}
			return
		}

		writeJSON(w, http.StatusOK, CreateUserResponse{
			Success: true,
			Message: "Usuario creado",
			ID:      id,
		})
	}
}

// NewEliminarUsuarioHandler returns an HTTP handler that removes a user.
// @Summary Delete user
// @Tags usuarios
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.Response "Protected admin or bad id"
// @Failure 404 {object} handlers.Response "Unknown user"
// @Router /api/admin/usuarios/{id} [delete]
func NewEliminarUsuarioHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Identificador inválido")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "Usuario no encontrado")
			case errors.Is(err, services.ErrProtectedAdmin):
				writeError(w, http.StatusBadRequest, "No se puede eliminar este administrador")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error interno")
			}
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: "Usuario eliminado"})
	}
}
