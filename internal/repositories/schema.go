package repositories

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/henkobit/inventario/internal/logger"
)

// schemaStatements creates the three tables, the unique EAN index and the
// seeded admin accounts. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		nombre_usuario VARCHAR(255) NOT NULL UNIQUE,
		es_admin BOOLEAN DEFAULT FALSE,
		fecha_creacion TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS articulos (
		id SERIAL PRIMARY KEY,
		codigo_articulo VARCHAR(255) NOT NULL,
		descripcion TEXT,
		ean VARCHAR(255),
		fecha_creacion TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS articulos_ean_unique_idx ON articulos (ean)`,
	`CREATE TABLE IF NOT EXISTS lecturas (
		id SERIAL PRIMARY KEY,
		usuario VARCHAR(255) NOT NULL,
		ean VARCHAR(255) NOT NULL,
		codigo_articulo VARCHAR(255) NOT NULL,
		descripcion TEXT,
		fecha_lectura TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,
	`INSERT INTO usuarios (nombre_usuario, es_admin) VALUES ('admin', TRUE)
		ON CONFLICT (nombre_usuario) DO NOTHING`,
	`INSERT INTO usuarios (nombre_usuario, es_admin) VALUES ('henkobit', TRUE)
		ON CONFLICT (nombre_usuario) DO NOTHING`,
}

// SchemaRepository bootstraps the database schema.
type SchemaRepository struct {
	db   *sqlx.DB
	once sync.Once
}

func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// Bootstrap runs the DDL and seed statements inside one transaction, at most
// once per process. Subsequent calls are no-ops even after a failure has been
// reported, so the caller must treat an error as fatal.
func (r *SchemaRepository) Bootstrap(ctx context.Context) error {
	var err error
	r.once.Do(func() {
		err = r.bootstrap(ctx)
	})
	return err
}

func (r *SchemaRepository) bootstrap(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin schema transaction", "error", err)
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("schema statement failed", "stmt", stmt, "error", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit schema transaction", "error", err)
		return err
	}

	logger.Log.Infow("schema bootstrap complete", "statements", len(schemaStatements))
	return nil
}
