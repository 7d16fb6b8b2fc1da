package models

import "time"

// User represents a row in the usuarios allowlist.
type User struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	NombreUsuario string    `json:"nombre_usuario" db:"nombre_usuario"` // Unique username
	EsAdmin       bool      `json:"es_admin" db:"es_admin"`             // Admin flag
	FechaCreacion time.Time `json:"fecha_creacion" db:"fecha_creacion"` // Creation timestamp
}

// ProtectedAdmins are seeded accounts that can never be deleted.
var ProtectedAdmins = map[string]bool{
	"admin":    true,
	"henkobit": true,
}
