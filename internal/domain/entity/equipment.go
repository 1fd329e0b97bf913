package entity

import (
	"math"
	"strings"
	"time"
)

// MaxQuantity tope de stock y de cantidad por movimiento (columnas INTEGER).
const MaxQuantity = math.MaxInt32

// Estados posibles de un equipo.
const (
	EquipmentStatusWorking     = "WORKING"      // funcionando
	EquipmentStatusDefective   = "DEFECTIVE"    // con defecto
	EquipmentStatusBroken      = "BROKEN"       // quebrado
	EquipmentStatusStolen      = "STOLEN"       // robado
	EquipmentStatusMaintenance = "MAINTENANCE"  // en mantenimiento
	EquipmentStatusInStock     = "IN_STOCK"     // en stock
	EquipmentStatusOutOfStock  = "OUT_OF_STOCK" // fuera de stock
)

// ValidEquipmentStatus indica si s es uno de los estados soportados.
func ValidEquipmentStatus(s string) bool {
	switch s {
	case EquipmentStatusWorking, EquipmentStatusDefective, EquipmentStatusBroken,
		EquipmentStatusStolen, EquipmentStatusMaintenance, EquipmentStatusInStock,
		EquipmentStatusOutOfStock:
		return true
	}
	return false
}

// Equipment representa un bien patrimonial o ítem de inventario.
// StockQuantity nunca es negativo; solo se concilia automáticamente si PatrimonyNumber tiene valor.
type Equipment struct {
	ID              string
	Name            string
	CategoryID      string
	PatrimonyNumber *string // único cuando existe; nil = sin número
	Description     *string
	Notes           *string
	EmployeeID      *string
	UnitID          *string
	StockQuantity   int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TracksStock indica si el equipo participa de la conciliación automática de stock.
func (e *Equipment) TracksStock() bool {
	return e.PatrimonyNumber != nil && strings.TrimSpace(*e.PatrimonyNumber) != ""
}

// DisplayName nombre para listados: "Nombre (Patrimônio: N)".
func (e *Equipment) DisplayName() string {
	number := "Sem número"
	if e.TracksStock() {
		number = *e.PatrimonyNumber
	}
	return e.Name + " (Patrimônio: " + number + ")"
}
