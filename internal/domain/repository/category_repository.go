package repository

import (
	"context"

	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Category, int, error)
	Delete(ctx context.Context, id string) error
}
