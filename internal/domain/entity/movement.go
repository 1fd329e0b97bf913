package entity

import "time"

// Tipos de movimiento de equipos.
const (
	MovementTypeEntry = "ENTRY" // entrada
	MovementTypeExit  = "EXIT"  // salida
)

// Movement registra una entrada o salida de un equipo, con origen y destino opcionales.
// Date lo asigna el servidor al crear y no cambia.
type Movement struct {
	ID                    string
	EquipmentID           string
	Date                  time.Time
	OriginEmployeeID      *string
	DestinationEmployeeID *string
	OriginUnitID          *string
	DestinationUnitID     *string
	Quantity              int // siempre positivo; el tipo define el signo
	Notes                 *string
	Type                  string
	CreatedBy             string
}
