package handlers

import (
	"context"
	"net/http"

	"github.com/henkobit/inventario/internal/logger"
	"github.com/henkobit/inventario/internal/models"
)

// ReadingLister defines the interface for listing recent readings.
type ReadingLister interface {
	ListRecent(ctx context.Context) ([]models.Reading, error)
}

// ReadingCleaner defines the interface for clearing the reading log.
type ReadingCleaner interface {
	Clear(ctx context.Context) error
}

// NewLecturasHandler returns an HTTP handler listing the most recent readings.
// @Summary List recent readings
// @Description Returns up to 100 readings, newest first
// @Tags lecturas
// @Produce json
// @Success 200 {array} models.Reading
// @Router /api/lecturas [get]
func NewLecturasHandler(svc ReadingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readings, err := svc.ListRecent(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}

		writeJSON(w, http.StatusOK, readings)
	}
}

// NewLimpiarLecturasHandler returns an HTTP handler that clears the reading log.
// @Summary Clear readings
// @Description Deletes every recorded reading
// @Tags lecturas
// @Produce json
// @Success 200 {object} handlers.Response
// @Router /api/lecturas/limpiar [delete]
func NewLimpiarLecturasHandler(svc ReadingCleaner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: "Lecturas eliminadas"})
	}
}
