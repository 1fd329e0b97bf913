package entity

import "time"

// Unit representa una unidad de la organización (establecimiento de salud).
// CNESCode es el código del establecimiento en el registro nacional CNES.
type Unit struct {
	ID        string
	Name      string  // único
	Address   *string // opcional
	CNESCode  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
