package services

import (
	"context"
	"errors"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

var (
	ErrUserAlreadyExists = errors.New("el usuario ya existe")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrProtectedAdmin    = errors.New("no se puede eliminar este administrador")
)

// UserDirectoryReader reads the allowlist.
type UserDirectoryReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserDirectoryWriter mutates the allowlist.
type UserDirectoryWriter interface {
	Save(ctx context.Context, nombreUsuario string, esAdmin bool) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserDirectoryService manages the allowlist of recognized usernames.
type UserDirectoryService struct {
	reader UserDirectoryReader
	writer UserDirectoryWriter
}

func NewUserDirectoryService(reader UserDirectoryReader, writer UserDirectoryWriter) *UserDirectoryService {
	return &UserDirectoryService{reader: reader, writer: writer}
}

// List returns every user, newest first.
func (svc *UserDirectoryService) List(ctx context.Context) ([]models.User, error) {
	return svc.reader.List(ctx)
}

// Create adds a non-admin user and returns its id. Duplicate usernames are
// reported as ErrUserAlreadyExists; the directory is left unchanged.
func (svc *UserDirectoryService) Create(ctx context.Context, nombreUsuario string) (int64, error) {
	id, err := svc.writer.Save(ctx, nombreUsuario, false)
	if err != nil {
		logger.Log.Errorw("failed to save user", "usuario", nombreUsuario, "err", err)
		return 0, err
	}
	if id == 0 {
		return 0, ErrUserAlreadyExists
	}
	return id, nil
}

// Delete removes the user with the given id. The seeded admin accounts can
// never be deleted.
func (svc *UserDirectoryService) Delete(ctx context.Context, id int64) error {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "id", id, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if models.ProtectedAdmins[user.NombreUsuario] {
		return ErrProtectedAdmin
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
