package repository

import (
	"context"

	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
)

// EmployeeFilter filtros del listado de funcionarios.
type EmployeeFilter struct {
	Search string // nombre o cargo
	UnitID string
	Limit  int
	Offset int
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context, filter EmployeeFilter) ([]*entity.Employee, int, error)
	Delete(ctx context.Context, id string) error
}
