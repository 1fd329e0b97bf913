package entity

import "time"

// Category agrupa equipos por tipo (computadores, impresoras, mobiliario...).
type Category struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}
