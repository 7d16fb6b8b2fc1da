package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

// RecentReadingsLimit caps the JSON listing; the export has no cap.
const RecentReadingsLimit = 100

const exportSheet = "Lecturas"

// ReadingReader reads the scan audit log.
type ReadingReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.Reading, error)
	ListAll(ctx context.Context) ([]models.Reading, error)
}

// ReadingRemover clears the scan audit log.
type ReadingRemover interface {
	DeleteAll(ctx context.Context) error
}

// ReadingService lists, clears and exports scan readings.
type ReadingService struct {
	reader  ReadingReader
	remover ReadingRemover
}

func NewReadingService(reader ReadingReader, remover ReadingRemover) *ReadingService {
	return &ReadingService{reader: reader, remover: remover}
}

// ListRecent returns up to RecentReadingsLimit readings, newest first.
func (svc *ReadingService) ListRecent(ctx context.Context) ([]models.Reading, error) {
	return svc.reader.ListRecent(ctx, RecentReadingsLimit)
}

// Clear deletes every reading.
func (svc *ReadingService) Clear(ctx context.Context) error {
	return svc.remover.DeleteAll(ctx)
}

// Export renders every reading into an xlsx workbook, newest first, and
// returns the file bytes with a timestamped download name. The header row is
// always present, even with zero readings.
func (svc *ReadingService) Export(ctx context.Context) ([]byte, string, error) {
	readings, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list readings for export", "err", err)
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", err
	}

	headers := []any{"EAN", "Codigo Articulo", "Descripcion", "Fecha"}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"121212"}},
	})
	if err != nil {
		return nil, "", err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "D1", headerStyle); err != nil {
		return nil, "", err
	}

	for i, reading := range readings {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			reading.EAN,
			reading.CodigoArticulo,
			reading.Descripcion,
			reading.FechaLectura.Format("02/01/2006 15:04"),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	for col, width := range map[string]float64{"A": 20, "B": 18, "C": 40, "D": 18} {
		if err := f.SetColWidth(exportSheet, col, col, width); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Log.Errorw("failed to write export workbook", "err", err)
		return nil, "", err
	}

	filename := fmt.Sprintf("lecturas_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
