package inventory

import (
	"context"

	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el movimiento y la actualización del equipo se confirmen juntos o no se confirmen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		equipmentRepo repository.EquipmentRepository,
	) error) error
}
