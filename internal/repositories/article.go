package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

type ArticleReadRepository struct {
	db *sqlx.DB
}

func NewArticleReadRepository(db *sqlx.DB) *ArticleReadRepository {
	return &ArticleReadRepository{db: db}
}

// GetByEAN returns the article with the given barcode, or nil if absent.
func (r *ArticleReadRepository) GetByEAN(ctx context.Context, ean string) (*models.Article, error) {
	const query = `
		SELECT id, codigo_articulo, COALESCE(descripcion, '') AS descripcion,
		       COALESCE(ean, '') AS ean, fecha_creacion
		FROM articulos
		WHERE ean = $1
	`

	var article models.Article
	err := r.db.GetContext(ctx, &article, query, ean)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ean},
		"result", article,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Count returns the number of rows in the article master.
func (r *ArticleReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articulos`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", count,
		"error", err,
	)

	return count, err
}

// ArticleWriteRepository loads and clears the article master. Import methods
// manage their own transactions, so they must not run under the request tx
// middleware.
type ArticleWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewArticleWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ArticleWriteRepository {
	return &ArticleWriteRepository{db: db, txGetter: txGetter}
}

// ReplaceAll truncates the master and bulk-loads the given rows through the
// Postgres COPY protocol, all in one transaction. On any error the previous
// master is left untouched.
func (r *ArticleWriteRepository) ReplaceAll(ctx context.Context, rows []models.ArticleRow) (int64, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		logger.Log.Errorw("failed to acquire connection for bulk load", "error", err)
		return 0, err
	}
	defer conn.Close()

	var copied int64
	err = conn.Raw(func(driverConn any) error {
		stdConn, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return errors.New("bulk load requires the pgx driver")
		}
		pgConn := stdConn.Conn()

		tx, err := pgConn.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if _, err := tx.Exec(ctx, "TRUNCATE articulos"); err != nil {
			return err
		}

		src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return []any{rows[i].CodigoArticulo, rows[i].Descripcion, rows[i].EAN}, nil
		})
		copied, err = tx.CopyFrom(ctx,
			pgx.Identifier{"articulos"},
			[]string{"codigo_articulo", "descripcion", "ean"},
			src,
		)
		if err != nil {
			return err
		}

		return tx.Commit(ctx)
	})

	logger.Log.Infow(
		"query", "TRUNCATE articulos; COPY articulos (codigo_articulo, descripcion, ean) FROM STDIN",
		"args", len(rows),
		"result", copied,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return copied, nil
}

// UpsertAll inserts the given rows in multi-row batches with
// ON CONFLICT (ean) DO NOTHING, all in one transaction. Existing EANs keep
// their current code and description; only new EANs are added.
func (r *ArticleWriteRepository) UpsertAll(ctx context.Context, rows []models.ArticleRow, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = 2000
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin import transaction", "error", err)
		return 0, err
	}
	defer tx.Rollback()

	var inserted int64
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		var sb strings.Builder
		sb.WriteString("INSERT INTO articulos (codigo_articulo, descripcion, ean) VALUES ")
		args := make([]any, 0, len(batch)*3)
		for i, row := range batch {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
			args = append(args, row.CodigoArticulo, row.Descripcion, row.EAN)
		}
		sb.WriteString(" ON CONFLICT (ean) DO NOTHING")

		res, err := tx.ExecContext(ctx, sb.String(), args...)
		if err != nil {
			logger.Log.Errorw("import batch failed", "batch_start", start, "error", err)
			return 0, err
		}
		n, _ := res.RowsAffected()
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	logger.Log.Infow(
		"query", "INSERT INTO articulos ... ON CONFLICT (ean) DO NOTHING",
		"args", len(rows),
		"result", inserted,
		"error", nil,
	)

	return inserted, nil
}

// DeleteAll empties the article master.
func (r *ArticleWriteRepository) DeleteAll(ctx context.Context) error {
	query := `TRUNCATE articulos`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query)

	logger.Log.Infow(
		"query", query,
		"error", err,
	)

	return err
}
