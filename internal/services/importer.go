package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

var (
	// ErrInvalidFileType is returned when the uploaded file is not an .xlsx.
	ErrInvalidFileType = errors.New("el archivo debe ser .xlsx")
	// ErrEmptySpreadsheet is returned when the workbook has no sheets.
	ErrEmptySpreadsheet = errors.New("el archivo no contiene hojas")
)

// Import strategies. Replace truncates the master and bulk-loads via COPY,
// which is the fast path for large files. Merge only adds EANs the master
// does not have yet and needs no TRUNCATE rights.
const (
	StrategyReplace = "replace"
	StrategyMerge   = "merge"
)

// ArticleLoader loads normalized rows into the master, each method in its
// own transaction.
type ArticleLoader interface {
	ReplaceAll(ctx context.Context, rows []models.ArticleRow) (int64, error)
	UpsertAll(ctx context.Context, rows []models.ArticleRow, batchSize int) (int64, error)
}

// CacheInvalidator drops cached barcode lookups after the master changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ImportResult reports what an import did.
type ImportResult struct {
	Imported    int64 // rows loaded (replace) or attempted (merge)
	Descartadas int   // rows dropped: missing code/EAN or duplicate EAN in file
}

// ImportService replaces or extends the article master from an uploaded
// spreadsheet.
type ImportService struct {
	loader    ArticleLoader
	cache     CacheInvalidator
	strategy  string
	batchSize int
}

// NewImportService creates a new ImportService. cache is optional.
func NewImportService(loader ArticleLoader, cache CacheInvalidator, strategy string, batchSize int) *ImportService {
	if strategy != StrategyMerge {
		strategy = StrategyReplace
	}
	return &ImportService{
		loader:    loader,
		cache:     cache,
		strategy:  strategy,
		batchSize: batchSize,
	}
}

// Import streams the spreadsheet, normalizes every data row and loads the
// accepted rows with the configured strategy in a single transaction.
// Row 1 is a header and is skipped; rows missing a code or a normalized EAN
// are counted as discarded and never abort the import.
func (s *ImportService) Import(ctx context.Context, filename string, file io.Reader) (ImportResult, error) {
	var result ImportResult

	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return result, ErrInvalidFileType
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		logger.Log.Errorw("failed to open spreadsheet", "filename", filename, "error", err)
		return result, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return result, ErrEmptySpreadsheet
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return result, err
	}
	defer rows.Close()

	accepted := make([]models.ArticleRow, 0, 1024)
	seen := make(map[string]struct{})
	header := true
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return ImportResult{}, err
		}
		if header {
			header = false
			continue
		}

		row, reason, ok := NormalizeRow(cols)
		if !ok {
			logger.Log.Debugw("row discarded", "reason", reason, "cols", cols)
			result.Descartadas++
			continue
		}
		if _, dup := seen[row.EAN]; dup {
			// The unique EAN index would reject the copy outright;
			// keep the first occurrence and count the rest.
			logger.Log.Debugw("row discarded", "reason", "ean duplicado en archivo", "ean", row.EAN)
			result.Descartadas++
			continue
		}
		seen[row.EAN] = struct{}{}
		accepted = append(accepted, row)
	}
	if err := rows.Close(); err != nil {
		return ImportResult{}, err
	}

	switch s.strategy {
	case StrategyMerge:
		result.Imported, err = s.loader.UpsertAll(ctx, accepted, s.batchSize)
	default:
		result.Imported, err = s.loader.ReplaceAll(ctx, accepted)
	}
	if err != nil {
		logger.Log.Errorw("import failed", "strategy", s.strategy, "rows", len(accepted), "error", err)
		return ImportResult{}, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate article cache after import", "error", err)
		}
	}

	logger.Log.Infow("import complete",
		"strategy", s.strategy,
		"imported", result.Imported,
		"descartadas", result.Descartadas,
	)
	return result, nil
}

// trailingZero matches numeric text whose decimal part is only zeros,
// e.g. "123.0" (a float-typed cell rendered with a spurious decimal).
var trailingZero = regexp.MustCompile(`^-?\d+\.0+$`)

// NormalizeRow turns one raw spreadsheet row (codigo, descripcion, ean) into
// a load-ready ArticleRow, or reports why the row must be discarded.
func NormalizeRow(cols []string) (models.ArticleRow, string, bool) {
	get := func(i int) string {
		if i < len(cols) {
			return cols[i]
		}
		return ""
	}

	codigo := normalizeText(get(0))
	descripcion := normalizeText(get(1))
	ean := normalizeEAN(get(2))

	if codigo == "" {
		return models.ArticleRow{}, "codigo vacio", false
	}
	if ean == "" {
		return models.ArticleRow{}, "ean vacio", false
	}

	return models.ArticleRow{
		CodigoArticulo: codigo,
		Descripcion:    descripcion,
		EAN:            ean,
	}, "", true
}

// normalizeText trims a free-text cell, collapses embedded tabs and
// newlines to spaces and drops the ".0" that float-typed cells grow.
func normalizeText(s string) string {
	s = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
	s = strings.TrimSpace(s)
	if trailingZero.MatchString(s) {
		s = s[:strings.IndexByte(s, '.')]
	}
	return s
}

// normalizeEAN coerces any text or numeric rendering of a barcode to a pure
// digit string. Scientific notation (e.g. "4.006381e+12") is expanded before
// non-digits are dropped.
func normalizeEAN(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			s = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}

	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
