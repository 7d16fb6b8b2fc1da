package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/henkobit/inventario/internal/models"
)

func TestReadingService_ListRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readings := []models.Reading{
		{ID: 2, EAN: "7501031311309"},
		{ID: 1, EAN: "4006381333931"},
	}

	reader := NewMockReadingReader(ctrl)
	reader.EXPECT().ListRecent(gomock.Any(), RecentReadingsLimit).Return(readings, nil)

	svc := NewReadingService(reader, NewMockReadingRemover(ctrl))
	got, err := svc.ListRecent(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, readings, got)
}

func TestReadingService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remover := NewMockReadingRemover(ctrl)
	remover.EXPECT().DeleteAll(gomock.Any()).Return(nil)

	svc := NewReadingService(NewMockReadingReader(ctrl), remover)

	assert.NoError(t, svc.Clear(context.Background()))
}

func TestReadingService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readings := []models.Reading{
		{
			ID:             2,
			Usuario:        "maria",
			EAN:            "7501031311309",
			CodigoArticulo: "A-200",
			Descripcion:    "Clavo 3in",
			FechaLectura:   time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC),
		},
		{
			ID:             1,
			Usuario:        "admin",
			EAN:            "4006381333931",
			CodigoArticulo: "A-100",
			Descripcion:    "Tornillo 5mm",
			FechaLectura:   time.Date(2025, 3, 13, 9, 30, 0, 0, time.UTC),
		},
	}

	reader := NewMockReadingReader(ctrl)
	reader.EXPECT().ListAll(gomock.Any()).Return(readings, nil)

	svc := NewReadingService(reader, NewMockReadingRemover(ctrl))
	data, filename, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.Regexp(t, `^lecturas_\d{8}_\d{6}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Lecturas", f.GetSheetName(0))

	rows, err := f.GetRows("Lecturas")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"EAN", "Codigo Articulo", "Descripcion", "Fecha"}, rows[0])
	assert.Equal(t, []string{"7501031311309", "A-200", "Clavo 3in", "14/03/2025 15:09"}, rows[1])
	assert.Equal(t, []string{"4006381333931", "A-100", "Tornillo 5mm", "13/03/2025 09:30"}, rows[2])
}

func TestReadingService_Export_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockReadingReader(ctrl)
	reader.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	svc := NewReadingService(reader, NewMockReadingRemover(ctrl))
	data, _, err := svc.Export(context.Background())

	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Header row survives even with no readings.
	rows, err := f.GetRows("Lecturas")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"EAN", "Codigo Articulo", "Descripcion", "Fecha"}, rows[0])
}

func TestReadingService_Export_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockReadingReader(ctrl)
	reader.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused"))

	svc := NewReadingService(reader, NewMockReadingRemover(ctrl))
	_, _, err := svc.Export(context.Background())

	assert.Error(t, err)
}
