package models

import "time"

// Reading is one barcode scan event. The article code and description are
// copied at scan time, so later master imports never rewrite history.
type Reading struct {
	ID             int64     `json:"id" db:"id"`
	Usuario        string    `json:"usuario" db:"usuario"`
	EAN            string    `json:"ean" db:"ean"`
	CodigoArticulo string    `json:"codigo_articulo" db:"codigo_articulo"`
	Descripcion    string    `json:"descripcion" db:"descripcion"`
	FechaLectura   time.Time `json:"fecha_lectura" db:"fecha_lectura"`
}

// ScanEvent is the message published for every recorded reading.
type ScanEvent struct {
	LecturaID int64  `json:"lectura_id"`
	Usuario   string `json:"usuario"`
	EAN       string `json:"ean"`
	Timestamp int64  `json:"timestamp"`
}
