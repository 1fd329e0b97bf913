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

// UnitUseCase casos de uso CRUD para unidades.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create crea una unidad.
func (uc *UnitUseCase) Create(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CNESCode <= 0 || in.CNESCode > entity.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	unit := &entity.Unit{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   trimOptional(in.Address),
		CNESCode:  in.CNESCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad por ID.
func (uc *UnitUseCase) GetByID(ctx context.Context, id string) (*dto.UnitResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Update actualiza una unidad.
func (uc *UnitUseCase) Update(ctx context.Context, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		unit.Name = name
	}
	if in.Address != nil {
		unit.Address = trimOptional(in.Address)
	}
	if in.CNESCode != nil {
		if *in.CNESCode <= 0 || *in.CNESCode > entity.MaxQuantity {
			return nil, domain.ErrInvalidInput
		}
		unit.CNESCode = *in.CNESCode
	}
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista unidades; search busca en nombre, dirección y código CNES.
func (uc *UnitUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.UnitListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return &dto.UnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina una unidad. Funcionarios, equipos y movimientos quedan sin unidad.
func (uc *UnitUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitResponse{
		ID:        u.ID,
		Name:      u.Name,
		Address:   u.Address,
		CNESCode:  u.CNESCode,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// trimOptional recorta espacios; cadena vacía se guarda como NULL.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
