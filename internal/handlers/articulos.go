package handlers

import (
	"context"
	"net/http"

	"github.com/henkobit/inventario/internal/logger"
)

// ArticleCounter defines the interface for counting the master.
type ArticleCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ArticleCleaner defines the interface for clearing the master.
type ArticleCleaner interface {
	Clear(ctx context.Context) error
}

// CountResponse reports the size of the article master
// swagger:model CountResponse
type CountResponse struct {
	// Number of articles
	// default: 0
	Count int64 `json:"count"`
}

// NewContarArticulosHandler returns an HTTP handler reporting the master size.
// @Summary Count articles
// @Tags articulos
// @Produce json
// @Success 200 {object} handlers.CountResponse
// @Router /api/articulos/count [get]
func NewContarArticulosHandler(svc ArticleCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Count(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}

		writeJSON(w, http.StatusOK, CountResponse{Count: count})
	}
}

// NewLimpiarArticulosHandler returns an HTTP handler that empties the master.
// @Summary Clear article master
// @Tags articulos
// @Produce json
// @Success 200 {object} handlers.Response
// @Router /api/articulos/limpiar [delete]
func NewLimpiarArticulosHandler(svc ArticleCleaner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Error interno")
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Message: "Tabla maestra limpiada"})
	}
}
