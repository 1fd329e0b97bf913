package repository

import (
	"context"

	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
)

// EquipmentFilter filtros del listado de equipos (consumido también por reportes externos).
// Search busca en nombre, número de patrimonio y nombre de categoría.
type EquipmentFilter struct {
	Search     string
	CategoryID string
	Status     string
	EmployeeID string
	UnitID     string
	Limit      int
	Offset     int
}

// EquipmentRepository define el puerto de persistencia para Equipment.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *entity.Equipment) error
	GetByID(ctx context.Context, id string) (*entity.Equipment, error)
	// GetForUpdate obtiene el equipo y bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Equipment, error)
	Update(ctx context.Context, equipment *entity.Equipment) error
	// UpdateStock persiste solo stock y unidad (usado por el libro de movimientos).
	UpdateStock(ctx context.Context, id string, quantity int, unitID *string) error
	List(ctx context.Context, filter EquipmentFilter) ([]*entity.Equipment, int, error)
	Delete(ctx context.Context, id string) error
}
