package entity

import "time"

// Employee funcionario que puede tener equipos a su cargo.
// UnitID queda en nil si la unidad se elimina.
type Employee struct {
	ID        string
	Name      string
	Role      *string
	UnitID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
