package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/middlewares"
	"github.com/henkobit/inventario/internal/models"
	"github.com/henkobit/inventario/internal/services"
)

// Scanner defines the interface that the scan service must implement.
type Scanner interface {
	Scan(ctx context.Context, ean, usuario string) (*models.Reading, error)
}

// ScanRequest represents the JSON body for a barcode scan
// swagger:model ScanRequest
type ScanRequest struct {
	// Scanned barcode
	// required: true
	// default: 4006381333931
	EAN string `json:"ean"`
}

// LecturaPayload is the reading snapshot returned after a successful scan
// swagger:model LecturaPayload
type LecturaPayload struct {
	ID             int64  `json:"id"`
	EAN            string `json:"ean"`
	CodigoArticulo string `json:"codigo_articulo"`
	Descripcion    string `json:"descripcion"`
}

// ScanResponse represents a successful scan response
// swagger:model ScanResponse
type ScanResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Lectura LecturaPayload `json:"lectura"`
}

// NewEscanearHandler returns an HTTP handler that records a barcode scan.
// @Summary Scan a barcode
// @Description Looks up the EAN in the article master and appends a reading
// @Tags lecturas
// @Accept json
// @Produce json
// @Param scanRequest body handlers.ScanRequest true "Scan Request"
// @Success 200 {object} handlers.ScanResponse "Reading recorded"
// @Failure 400 {object} handlers.Response "Empty barcode"
// @Failure 404 {object} handlers.Response "EAN not in master"
// @Router /api/escanear [post]
func NewEscanearHandler(svc Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScanRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Código de barras vacío")
			return
		}

		ean := strings.TrimSpace(req.EAN)
		if ean == "" {
			writeError(w, http.StatusBadRequest, "Código de barras vacío")
			return
		}

		var usuario string
		if sess := middlewares.GetSessionFromContext(r.Context()); sess != nil {
			usuario = sess.Usuario
		}

		reading, err := svc.Scan(r.Context(), ean, usuario)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrArticleNotFound):
				writeError(w, http.StatusNotFound,
					fmt.Sprintf("No. Código %s NO encontrado en el maestro", ean))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Error interno")
			}
			return
		}

		writeJSON(w, http.StatusOK, ScanResponse{
			Success: true,
			Message: "No. Artículo encontrado y registrado",
			Lectura: LecturaPayload{
				ID:             reading.ID,
				EAN:            reading.EAN,
				CodigoArticulo: reading.CodigoArticulo,
				Descripcion:    reading.Descripcion,
			},
		})
	}
}
