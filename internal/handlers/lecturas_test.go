package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/henkobit/inventario/internal/models"
)

func TestLecturasHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanned := time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC)
	readings := []models.Reading{
		{
			ID:             2,
			Usuario:        "maria",
			EAN:            "7501031311309",
			CodigoArticulo: "A-200",
			Descripcion:    "Clavo 3in",
			FechaLectura:   scanned,
		},
	}

	svc := NewMockReadingLister(ctrl)
	svc.EXPECT().ListRecent(gomock.Any()).Return(readings, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/lecturas", nil)
	rec := httptest.NewRecorder()

	NewLecturasHandler(svc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 2,
		"usuario": "maria",
		"ean": "7501031311309",
		"codigo_articulo": "A-200",
		"descripcion": "Clavo 3in",
		"fecha_lectura": "2025-03-14T15:09:00Z"
	}]`, rec.Body.String())
}

func TestLecturasHandler_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockReadingLister(ctrl)
	svc.EXPECT().ListRecent(gomock.Any()).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/lecturas", nil)
	rec := httptest.NewRecorder()

	NewLecturasHandler(svc)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success": false, "message": "Error interno"}`, rec.Body.String())
}

func TestLimpiarLecturasHandler(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(svc *MockReadingCleaner)
		wantStatus int
		wantBody   string
	}{
		{
			name: "log cleared",
			setupMock: func(svc *MockReadingCleaner) {
				svc.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success": true, "message": "Lecturas eliminadas"}`,
		},
		{
			name: "delete failure",
			setupMock: func(svc *MockReadingCleaner) {
				svc.EXPECT().Clear(gomock.Any()).Return(errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success": false, "message": "Error interno"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockReadingCleaner(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/lecturas/limpiar", nil)
			rec := httptest.NewRecorder()

			NewLimpiarLecturasHandler(svc)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
