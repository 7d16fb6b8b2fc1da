package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil if absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, nombreUsuario string) (*models.User, error) {
	const query = `
		SELECT id, nombre_usuario, es_admin, fecha_creacion
		FROM usuarios
		WHERE nombre_usuario = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, nombreUsuario)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{nombreUsuario},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, nombre_usuario, es_admin, fecha_creacion
		FROM usuarios
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns every user, newest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, nombre_usuario, es_admin, fecha_creacion
		FROM usuarios
		ORDER BY fecha_creacion DESC
	`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, err
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user with a conflict-safe insert. It returns the new
// user's id, or 0 when the username already existed (no row inserted).
func (r *UserWriteRepository) Save(ctx context.Context, nombreUsuario string, esAdmin bool) (int64, error) {
	query := `
		INSERT INTO usuarios (nombre_usuario, es_admin)
		VALUES ($1, $2)
		ON CONFLICT (nombre_usuario) DO NOTHING
		RETURNING id
	`
	args := []any{nombreUsuario, esAdmin}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		// DO NOTHING fired: the username is taken.
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Delete removes the user with the given id. Returns false when no row matched.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM usuarios WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}
