package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/services"
)

// maxImportMemory bounds the multipart parser's in-memory buffer; larger
// uploads spill to temp files.
const maxImportMemory = 32 << 20

// ArticleImporter defines the interface that the import service must implement.
type ArticleImporter interface {
	Import(ctx context.Context, filename string, file io.Reader) (services.ImportResult, error)
}

// NewImportarHandler returns an HTTP handler that replaces or extends the
// article master from an uploaded spreadsheet.
// @Summary Import article master
// @Description Loads articles from an uploaded .xlsx file in one transaction
// @Tags articulos
// @Accept multipart/form-data
// @Produce json
// @Param archivo formData file true "Spreadsheet (.xlsx): codigo, descripcion, ean"
// @Success 200 {object} handlers.Response "Import counts"
// @Failure 400 {object} handlers.Response "Missing file or wrong extension"
// @Failure 500 {object} handlers.Response "Import rolled back"
// @Router /api/articulos/importar [post]
func NewImportarHandler(svc ArticleImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportMemory); err != nil {
			writeError(w, http.StatusBadRequest, "No se recibió archivo")
			return
		}

		file, header, err := r.FormFile("archivo")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No se recibió archivo")
			return
		}
		defer file.Close()

		if header.Filename == "" {
			writeError(w, http.StatusBadRequest, "Nombre de archivo vacío")
			return
		}

		result, err := svc.Import(r.Context(), header.Filename, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidFileType):
				writeError(w, http.StatusBadRequest, "Debe ser un archivo .xlsx")
			default:
				logger.Log.Errorw("import failed", "err", err)
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
			}
			return
		}

		writeJSON(w, http.StatusOK, Response{
			Success: true,
			Message: fmt.Sprintf("Importación completada: %d artículos cargados. Descartadas: %d.",
				result.Imported, result.Descartadas),
		})
	}
}
