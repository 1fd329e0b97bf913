package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/patrimonio-api/internal/application/dto"
)

// equipmentService contrato que cumple *usecase.EquipmentUseCase.
type equipmentService interface {
	Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EquipmentResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error)
	List(ctx context.Context, in dto.EquipmentListRequest) (*dto.EquipmentListResponse, error)
	Delete(ctx context.Context, id string) error
}

// EquipmentHandler maneja las peticiones HTTP de equipos y su historial de movimientos.
type EquipmentHandler struct {
	uc        equipmentService
	movements movementQuerier
}

// NewEquipmentHandler construye el handler.
func NewEquipmentHandler(uc equipmentService, movements movementQuerier) *EquipmentHandler {
	return &EquipmentHandler{uc: uc, movements: movements}
}

// Create godoc
// @Summary      Registrar equipo
// @Tags         equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipmentRequest  true  "name, category_id, patrimony_number, stock_quantity, status..."
// @Success      201   {object}  dto.EquipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipment [post]
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err, "categoría, funcionario o unidad no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener equipo
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [get]
func (h *EquipmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "equipo no encontrado")
	}
	if out == nil {
		return notFound(c, "equipo no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar equipo
// @Description  stock_quantity permite corregir el stock a mano (nunca negativo).
// @Tags         equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipmentRequest  true  "campos a modificar"
// @Success      200   {object}  dto.EquipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [put]
func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEquipmentRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, "equipo o referencia no encontrado")
	}
	if out == nil {
		return notFound(c, "equipo no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar equipos
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Nombre, número de patrimonio o categoría"
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Param        status       query  string  false  "WORKING, DEFECTIVE, BROKEN, STOLEN, MAINTENANCE, IN_STOCK, OUT_OF_STOCK"
// @Param        employee_id  query  string  false  "Filtrar por funcionario"
// @Param        unit_id      query  string  false  "Filtrar por unidad"
// @Param        limit        query  int     false  "Límite (default 20, máx 100)"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {object}  dto.EquipmentListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/equipment [get]
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	var in dto.EquipmentListRequest
	if ok, err := bindQuery(c, &in); !ok {
		return err
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos de un equipo
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del equipo"
// @Param        type    query  string  false  "ENTRY o EXIT"
// @Param        from    query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite (default 20, máx 100)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipment/{id}/movements [get]
func (h *EquipmentHandler) Movements(c *fiber.Ctx) error {
	id := c.Params("id")
	equipment, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err, "equipo no encontrado")
	}
	if equipment == nil {
		return notFound(c, "equipo no encontrado")
	}
	var in dto.MovementListRequest
	if ok, err := bindQuery(c, &in); !ok {
		return err
	}
	in.EquipmentID = id
	out, err := h.movements.List(c.Context(), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar equipo (y su historial)
// @Tags         equipment
// @Security     Bearer
// @Param        id   path  string  true  "ID del equipo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err, "equipo no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
