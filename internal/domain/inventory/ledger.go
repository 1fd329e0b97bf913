package inventory

import (
	"fmt"

	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
)

// CheckAvailability valida una salida contra el stock actual (servicio de dominio).
// La validación de salida aplica aunque el equipo no tenga patrimonio. Una entrada solo
// se rechaza si llevaría el stock conciliado por encima de MaxQuantity.
func CheckAvailability(equipment *entity.Equipment, movementType string, quantity int) error {
	if quantity > entity.MaxQuantity {
		return fmt.Errorf("%w: cantidad mayor que %d", domain.ErrInvalidInput, entity.MaxQuantity)
	}
	if movementType != entity.MovementTypeExit {
		if equipment.TracksStock() && equipment.StockQuantity > entity.MaxQuantity-quantity {
			return fmt.Errorf("%w: el stock superaría %d", domain.ErrInvalidInput, entity.MaxQuantity)
		}
		return nil
	}
	if equipment.StockQuantity < quantity {
		return &domain.InsufficientStockError{
			Available: equipment.StockQuantity,
			Requested: quantity,
		}
	}
	return nil
}

// ApplyMovement aplica el movimiento sobre el equipo en memoria y devuelve true si lo modificó.
// Solo equipos con número de patrimonio se concilian:
//   - EXIT:  stock -= cantidad (mínimo 0)
//   - ENTRY: stock += cantidad
//   - con unidad destino, el equipo pasa a esa unidad.
func ApplyMovement(equipment *entity.Equipment, movement *entity.Movement) bool {
	if !equipment.TracksStock() {
		return false
	}
	switch movement.Type {
	case entity.MovementTypeExit:
		equipment.StockQuantity -= movement.Quantity
		if equipment.StockQuantity < 0 {
			equipment.StockQuantity = 0
		}
	default:
		equipment.StockQuantity += movement.Quantity
	}
	if movement.DestinationUnitID != nil {
		unitID := *movement.DestinationUnitID
		equipment.UnitID = &unitID
	}
	return true
}
