package services

import (
	"context"
	"errors"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

// Error variables
var (
	ErrUserNotAuthorized = errors.New("usuario no autorizado")
)

// UserReader defines the lookup needed for login.
type UserReader interface {
	GetByUsername(ctx context.Context, nombreUsuario string) (*models.User, error)
}

// AuthService authenticates usernames against the allowlist. There are no
// passwords: being present in the directory is the whole credential.
type AuthService struct {
	reader UserReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader) *AuthService {
	return &AuthService{reader: reader}
}

// Login checks the username against the directory and reports the admin flag.
func (svc *AuthService) Login(ctx context.Context, usuario string) (bool, error) {
	user, err := svc.reader.GetByUsername(ctx, usuario)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "usuario", usuario, "err", err)
		return false, err
	}
	if user == nil {
		logger.Log.Infow("login rejected", "usuario", usuario)
		return false, ErrUserNotAuthorized
	}

	return user.EsAdmin, nil
}
