package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/patrimonio-api/internal/application/dto"
	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para funcionarios.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	unitRepo repository.UnitRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, unitRepo repository.UnitRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, unitRepo: unitRepo}
}

// Create crea un funcionario; la unidad, si se indica, debe existir.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	unitID := trimOptional(in.UnitID)
	if err := uc.checkUnit(ctx, unitID); err != nil {
		return nil, err
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      trimOptional(in.Role),
		UnitID:    unitID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un funcionario por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un funcionario.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Name = name
	}
	if in.Role != nil {
		employee.Role = trimOptional(in.Role)
	}
	switch {
	case in.ClearUnit:
		employee.UnitID = nil
	case in.UnitID != nil:
		unitID := trimOptional(in.UnitID)
		if err := uc.checkUnit(ctx, unitID); err != nil {
			return nil, err
		}
		employee.UnitID = unitID
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista funcionarios con búsqueda por nombre/cargo y filtro por unidad.
func (uc *EmployeeUseCase) List(ctx context.Context, search, unitID string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	if err := checkFilterIDs(unitID); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.EmployeeFilter{
		Search: search,
		UnitID: unitID,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un funcionario; sus equipos y movimientos quedan sin funcionario.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *EmployeeUseCase) checkUnit(ctx context.Context, unitID *string) error {
	if unitID == nil {
		return nil
	}
	if !validID(*unitID) {
		return domain.ErrInvalidInput
	}
	unit, err := uc.unitRepo.GetByID(ctx, *unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		UnitID:    e.UnitID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
