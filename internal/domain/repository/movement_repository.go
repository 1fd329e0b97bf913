package repository

import (
	"context"
	"time"

	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
)

// MovementFilter filtros del listado de movimientos. Campos vacíos no filtran.
type MovementFilter struct {
	EquipmentID           string
	Type                  string
	From                  *time.Time
	To                    *time.Time
	OriginUnitID          string
	DestinationUnitID     string
	OriginEmployeeID      string
	DestinationEmployeeID string
	Search                string // nombre del equipo
	Limit                 int
	Offset                int
}

// MovementRepository define el puerto de persistencia para movimientos.
// No hay Update ni Delete: un movimiento registrado es inmutable.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, int, error)
}
