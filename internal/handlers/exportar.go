package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/henkobit/inventario/internal/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReadingExporter defines the interface for exporting readings.
type ReadingExporter interface {
	Export(ctx context.Context) ([]byte, string, error)
}

// NewExportarHandler returns an HTTP handler that downloads all readings as xlsx.
// @Summary Export readings
// @Description Downloads every reading as a styled xlsx workbook, newest first
// @Tags lecturas
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/exportar [get]
func NewExportarHandler(svc ReadingExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, filename, err := svc.Export(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
