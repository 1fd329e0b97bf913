package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/patrimonio-api/internal/application/dto"
	"github.com/jhoicas/patrimonio-api/internal/domain"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/patrimonio-api/internal/domain/inventory"
	"github.com/jhoicas/patrimonio-api/internal/domain/repository"
)

// RecordMovementUseCase registra entradas y salidas de equipos de forma transaccional:
// bloqueo de la fila del equipo (SELECT FOR UPDATE), validación de stock, insert del
// movimiento y actualización del equipo, con Commit/Rollback en TxRunner.
type RecordMovementUseCase struct {
	txRunner     TxRunner
	employeeRepo repository.EmployeeRepository
	unitRepo     repository.UnitRepository
	userRepo     repository.UserRepository
	now          func() time.Time
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	employeeRepo repository.EmployeeRepository,
	unitRepo repository.UnitRepository,
	userRepo repository.UserRepository,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:     txRunner,
		employeeRepo: employeeRepo,
		unitRepo:     unitRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// MovementInputDTO entrada del caso de uso. UserID es el usuario autenticado (puede ser vacío).
type MovementInputDTO struct {
	UserID                string
	EquipmentID           string
	Type                  string
	Quantity              int
	OriginEmployeeID      *string
	DestinationEmployeeID *string
	OriginUnitID          *string
	DestinationUnitID     *string
	Notes                 *string
}

// RecordMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, userID string, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	return uc.RecordMovement(ctx, MovementInputDTO{
		UserID:                userID,
		EquipmentID:           in.EquipmentID,
		Type:                  in.Type,
		Quantity:              in.Quantity,
		OriginEmployeeID:      in.OriginEmployeeID,
		DestinationEmployeeID: in.DestinationEmployeeID,
		OriginUnitID:          in.OriginUnitID,
		DestinationUnitID:     in.DestinationUnitID,
		Notes:                 in.Notes,
	})
}

// RecordMovement valida la entrada, abre la transacción, bloquea el equipo, rechaza salidas
// sin stock suficiente (InsufficientStockError, antes de escribir nada), inserta el movimiento
// y concilia el stock del equipo. Cualquier error deja la base como estaba.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInputDTO) (*dto.MovementResponse, error) {
	input.OriginEmployeeID = blankToNil(input.OriginEmployeeID)
	input.DestinationEmployeeID = blankToNil(input.DestinationEmployeeID)
	input.OriginUnitID = blankToNil(input.OriginUnitID)
	input.DestinationUnitID = blankToNil(input.DestinationUnitID)

	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 || input.Quantity > entity.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	if !validID(input.EquipmentID) {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != entity.MovementTypeEntry && input.Type != entity.MovementTypeExit {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.checkUser(ctx, input.UserID); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	mov := &entity.Movement{
		ID:                    uuid.New().String(),
		EquipmentID:           input.EquipmentID,
		Date:                  uc.now().UTC(),
		OriginEmployeeID:      input.OriginEmployeeID,
		DestinationEmployeeID: input.DestinationEmployeeID,
		OriginUnitID:          input.OriginUnitID,
		DestinationUnitID:     input.DestinationUnitID,
		Quantity:              input.Quantity,
		Notes:                 input.Notes,
		Type:                  input.Type,
		CreatedBy:             input.UserID,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		equipmentRepo repository.EquipmentRepository,
	) error {
		// Bloquea la fila del equipo hasta Commit/Rollback
		equipment, err := equipmentRepo.GetForUpdate(ctx, input.EquipmentID)
		if err != nil {
			return err
		}
		if equipment == nil {
			return domain.ErrNotFound
		}
		if err := inventory.CheckAvailability(equipment, mov.Type, mov.Quantity); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		if !inventory.ApplyMovement(equipment, mov) {
			return nil
		}
		return equipmentRepo.UpdateStock(ctx, equipment.ID, equipment.StockQuantity, equipment.UnitID)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// checkUser valida que el autor del movimiento siga existiendo y activo.
// Un token de un usuario borrado da ErrUnauthorized; uno desactivado, ErrForbidden.
func (uc *RecordMovementUseCase) checkUser(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	if !validID(userID) {
		return domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return domain.ErrForbidden
	}
	return nil
}

// checkReferences valida que funcionarios y unidades de origen/destino existan.
func (uc *RecordMovementUseCase) checkReferences(ctx context.Context, input MovementInputDTO) error {
	for _, id := range []*string{input.OriginEmployeeID, input.DestinationEmployeeID, input.OriginUnitID, input.DestinationUnitID} {
		if id != nil && !validID(*id) {
			return domain.ErrInvalidInput
		}
	}
	for _, id := range []*string{input.OriginEmployeeID, input.DestinationEmployeeID} {
		if id == nil {
			continue
		}
		emp, err := uc.employeeRepo.GetByID(ctx, *id)
		if err != nil {
			return fmt.Errorf("get employee: %w", err)
		}
		if emp == nil {
			return domain.ErrNotFound
		}
	}
	for _, id := range []*string{input.OriginUnitID, input.DestinationUnitID} {
		if id == nil {
			continue
		}
		unit, err := uc.unitRepo.GetByID(ctx, *id)
		if err != nil {
			return fmt.Errorf("get unit: %w", err)
		}
		if unit == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// validID indica si id es un UUID en forma canónica; todas las claves de la base lo son.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                    m.ID,
		EquipmentID:           m.EquipmentID,
		Date:                  m.Date,
		Type:                  m.Type,
		Quantity:              m.Quantity,
		OriginEmployeeID:      m.OriginEmployeeID,
		DestinationEmployeeID: m.DestinationEmployeeID,
		OriginUnitID:          m.OriginUnitID,
		DestinationUnitID:     m.DestinationUnitID,
		Notes:                 m.Notes,
		CreatedBy:             m.CreatedBy,
	}
}
