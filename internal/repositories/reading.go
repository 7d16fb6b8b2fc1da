package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

type ReadingReadRepository struct {
	db *sqlx.DB
}

func NewReadingReadRepository(db *sqlx.DB) *ReadingReadRepository {
	return &ReadingReadRepository{db: db}
}

// ListRecent returns the newest readings, capped at limit.
func (r *ReadingReadRepository) ListRecent(ctx context.Context, limit int) ([]models.Reading, error) {
	const query = `
		SELECT id, usuario, ean, codigo_articulo,
		       COALESCE(descripcion, '') AS descripcion, fecha_lectura
		FROM lecturas
		ORDER BY fecha_lectura DESC
		LIMIT $1
	`

	readings := []models.Reading{}
	err := r.db.SelectContext(ctx, &readings, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(readings),
		"error", err,
	)

	return readings, err
}

// ListAll returns every reading, newest first. Used by the export.
func (r *ReadingReadRepository) ListAll(ctx context.Context) ([]models.Reading, error) {
	const query = `
		SELECT id, usuario, ean, codigo_articulo,
		       COALESCE(descripcion, '') AS descripcion, fecha_lectura
		FROM lecturas
		ORDER BY fecha_lectura DESC
	`

	readings := []models.Reading{}
	err := r.db.SelectContext(ctx, &readings, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(readings),
		"error", err,
	)

	return readings, err
}

type ReadingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReadingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReadingWriteRepository {
	return &ReadingWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one reading and returns its id.
func (r *ReadingWriteRepository) Save(ctx context.Context, usuario, ean, codigoArticulo, descripcion string) (int64, error) {
	query := `
		INSERT INTO lecturas (usuario, ean, codigo_articulo, descripcion)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{usuario, ean, codigoArticulo, descripcion}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// DeleteAll removes every reading.
func (r *ReadingWriteRepository) DeleteAll(ctx context.Context) error {
	query := `DELETE FROM lecturas`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
