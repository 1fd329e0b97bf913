package repository

import (
	"context"

	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, id string) (*entity.Unit, error)
	Update(ctx context.Context, unit *entity.Unit) error
	// Upsert inserta o actualiza por nombre (usado por el importador CNES).
	Upsert(ctx context.Context, unit *entity.Unit) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Unit, int, error)
	Delete(ctx context.Context, id string) error
}
