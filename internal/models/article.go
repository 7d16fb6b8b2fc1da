package models

import "time"

// Article is a row in the articulos master table.
type Article struct {
	ID             int64     `json:"id" db:"id"`                         // Primary key
	CodigoArticulo string    `json:"codigo_articulo" db:"codigo_articulo"`
	Descripcion    string    `json:"descripcion" db:"descripcion"`
	EAN            string    `json:"ean" db:"ean"` // Unique barcode
	FechaCreacion  time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}

// ArticleRow is one normalized spreadsheet row ready for loading.
type ArticleRow struct {
	CodigoArticulo string
	Descripcion    string
	EAN            string
}
