package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/patrimonio-api/internal/application/dto"
	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el histórico de movimientos.
type MovementQueryUseCase struct {
	repo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(repo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{repo: repo}
}

// GetByID obtiene un movimiento. Devuelve (nil, nil) si no existe.
func (uc *MovementQueryUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	if !validID(id) {
		return nil, nil
	}
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMovementResponse(m), nil
}

// List lista movimientos filtrados, más recientes primero.
func (uc *MovementQueryUseCase) List(ctx context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error) {
	in.DefaultPage()
	if in.Type != "" && in.Type != entity.MovementTypeEntry && in.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}
	for _, id := range []string{in.EquipmentID, in.OriginUnitID, in.DestinationUnitID, in.OriginEmployeeID, in.DestinationEmployeeID} {
		if id != "" && !validID(id) {
			return nil, fmt.Errorf("%w: id %q", domain.ErrInvalidInput, id)
		}
	}
	from, err := parseDate(in.From, false)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(in.To, true)
	if err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, repository.MovementFilter{
		EquipmentID:           in.EquipmentID,
		Type:                  in.Type,
		From:                  from,
		To:                    to,
		OriginUnitID:          in.OriginUnitID,
		DestinationUnitID:     in.DestinationUnitID,
		OriginEmployeeID:      in.OriginEmployeeID,
		DestinationEmployeeID: in.DestinationEmployeeID,
		Search:                in.Search,
		Limit:                 in.Limit,
		Offset:                in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// parseDate acepta RFC3339 o YYYY-MM-DD. Con endOfDay, una fecha sin hora cubre el día completo.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
