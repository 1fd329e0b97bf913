package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/patrimonio-api/internal/application/dto"
)

// movementRecorder contrato que cumple *inventory.RecordMovementUseCase.
type movementRecorder interface {
	RecordMovementFromRequest(ctx context.Context, userID string, in dto.RecordMovementRequest) (*dto.MovementResponse, error)
}

// movementQuerier contrato que cumple *inventory.MovementQueryUseCase.
type movementQuerier interface {
	GetByID(ctx context.Context, id string) (*dto.MovementResponse, error)
	List(ctx context.Context, in dto.MovementListRequest) (*dto.MovementListResponse, error)
}

// MovementHandler maneja las peticiones HTTP de movimientos (entradas y salidas).
type MovementHandler struct {
	recorder movementRecorder
	query    movementQuerier
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recorder movementRecorder, query movementQuerier) *MovementHandler {
	return &MovementHandler{recorder: recorder, query: query}
}

// Record godoc
// @Summary      Registrar movimiento
// @Description  Bloquea el equipo, valida stock en salidas y concilia stock/unidad si el equipo tiene número de patrimonio.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "equipment_id, type (ENTRY|EXIT), quantity (default 1), origen/destino"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.recorder.RecordMovementFromRequest(c.Context(), userID, in)
	if err != nil {
		return writeError(c, err, "equipo, funcionario o unidad no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "movimiento no encontrado")
	}
	if out == nil {
		return notFound(c, "movimiento no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        equipment_id             query  string  false  "Filtrar por equipo"
// @Param        type                     query  string  false  "ENTRY o EXIT"
// @Param        from                     query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to                       query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        origin_unit_id           query  string  false  "Unidad de origen"
// @Param        destination_unit_id      query  string  false  "Unidad de destino"
// @Param        origin_employee_id       query  string  false  "Funcionario de origen"
// @Param        destination_employee_id  query  string  false  "Funcionario de destino"
// @Param        search                   query  string  false  "Nombre o patrimonio del equipo"
// @Param        limit                    query  int     false  "Límite (default 20, máx 100)"
// @Param        offset                   query  int     false  "Offset"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if ok, err := bindQuery(c, &in); !ok {
		return err
	}
	out, err := h.query.List(c.Context(), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}
