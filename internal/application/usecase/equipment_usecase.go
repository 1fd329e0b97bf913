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

// EquipmentUseCase casos de uso CRUD y listado filtrado de equipos.
// El stock cambia normalmente vía movimientos; aquí solo se fija el inicial o se corrige a mano (≥ 0).
type EquipmentUseCase struct {
	repo         repository.EquipmentRepository
	categoryRepo repository.CategoryRepository
	employeeRepo repository.EmployeeRepository
	unitRepo     repository.UnitRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(
	repo repository.EquipmentRepository,
	categoryRepo repository.CategoryRepository,
	employeeRepo repository.EmployeeRepository,
	unitRepo repository.UnitRepository,
) *EquipmentUseCase {
	return &EquipmentUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		employeeRepo: employeeRepo,
		unitRepo:     unitRepo,
	}
}

// Create registra un equipo. Status por defecto WORKING; número de patrimonio vacío se guarda como NULL.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.StockQuantity < 0 || in.StockQuantity > entity.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EquipmentStatusWorking
	}
	if !entity.ValidEquipmentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	employeeID := trimOptional(in.EmployeeID)
	unitID := trimOptional(in.UnitID)
	if err := uc.checkReferences(ctx, &in.CategoryID, employeeID, unitID); err != nil {
		return nil, err
	}
	now := time.Now()
	equipment := &entity.Equipment{
		ID:              uuid.New().String(),
		Name:            name,
		CategoryID:      in.CategoryID,
		PatrimonyNumber: trimOptional(in.PatrimonyNumber),
		Description:     in.Description,
		Notes:           in.Notes,
		EmployeeID:      employeeID,
		UnitID:          unitID,
		StockQuantity:   in.StockQuantity,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, equipment); err != nil {
		return nil, err
	}
	return toEquipmentResponse(equipment), nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipmentUseCase) GetByID(ctx context.Context, id string) (*dto.EquipmentResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	equipment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEquipmentResponse(equipment), nil
}

// Update actualiza un equipo. Un patrimonio vacío lo quita del control automático de stock.
func (uc *EquipmentUseCase) Update(ctx context.Context, id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	equipment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		equipment.Name = name
	}
	if in.Status != nil {
		if !entity.ValidEquipmentStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		equipment.Status = *in.Status
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 || *in.StockQuantity > entity.MaxQuantity {
			return nil, domain.ErrInvalidInput
		}
		equipment.StockQuantity = *in.StockQuantity
	}
	if in.PatrimonyNumber != nil {
		equipment.PatrimonyNumber = trimOptional(in.PatrimonyNumber)
	}
	if in.Description != nil {
		equipment.Description = in.Description
	}
	if in.Notes != nil {
		equipment.Notes = in.Notes
	}

	var categoryID *string
	if in.CategoryID != nil {
		categoryID = in.CategoryID
		equipment.CategoryID = *in.CategoryID
	}
	employeeID := trimOptional(in.EmployeeID)
	unitID := trimOptional(in.UnitID)
	if err := uc.checkReferences(ctx, categoryID, employeeID, unitID); err != nil {
		return nil, err
	}
	if in.EmployeeID != nil {
		equipment.EmployeeID = employeeID
	}
	if in.UnitID != nil {
		equipment.UnitID = unitID
	}

	equipment.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, equipment); err != nil {
		return nil, err
	}
	return toEquipmentResponse(equipment), nil
}

// List lista equipos con los filtros del listado administrativo, ordenados por nombre.
func (uc *EquipmentUseCase) List(ctx context.Context, in dto.EquipmentListRequest) (*dto.EquipmentListResponse, error) {
	in.DefaultPage()
	if in.Status != "" && !entity.ValidEquipmentStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if err := checkFilterIDs(in.CategoryID, in.EmployeeID, in.UnitID); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.EquipmentFilter{
		Search:     in.Search,
		CategoryID: in.CategoryID,
		Status:     in.Status,
		EmployeeID: in.EmployeeID,
		UnitID:     in.UnitID,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEquipmentResponse(e))
	}
	return &dto.EquipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Delete elimina un equipo junto con sus movimientos.
func (uc *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// checkReferences valida que categoría, funcionario y unidad (los no nil) existan.
func (uc *EquipmentUseCase) checkReferences(ctx context.Context, categoryID, employeeID, unitID *string) error {
	for _, id := range []*string{categoryID, employeeID, unitID} {
		if id != nil && !validID(*id) {
			return domain.ErrInvalidInput
		}
	}
	if categoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
	}
	if employeeID != nil {
		employee, err := uc.employeeRepo.GetByID(ctx, *employeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrNotFound
		}
	}
	if unitID != nil {
		unit, err := uc.unitRepo.GetByID(ctx, *unitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func toEquipmentResponse(e *entity.Equipment) *dto.EquipmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipmentResponse{
		ID:              e.ID,
		DisplayName:     e.DisplayName(),
		Name:            e.Name,
		CategoryID:      e.CategoryID,
		PatrimonyNumber: e.PatrimonyNumber,
		Description:     e.Description,
		Notes:           e.Notes,
		EmployeeID:      e.EmployeeID,
		UnitID:          e.UnitID,
		StockQuantity:   e.StockQuantity,
		Status:          e.Status,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
