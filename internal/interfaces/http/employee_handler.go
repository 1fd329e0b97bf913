package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/patrimonio-api/internal/application/dto"
)

// employeeService contrato que cumple *usecase.EmployeeUseCase.
type employeeService interface {
	Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	List(ctx context.Context, search, unitID string, page dto.PageRequest) (*dto.EmployeeListResponse, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeHandler maneja las peticiones HTTP de funcionarios.
type EmployeeHandler struct {
	uc employeeService
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc employeeService) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear funcionario
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "name, role, unit_id"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err, "unidad no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener funcionario
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del funcionario"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "funcionario no encontrado")
	}
	if out == nil {
		return notFound(c, "funcionario no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar funcionario
// @Tags         employees
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del funcionario"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "campos a modificar; clear_unit desvincula la unidad"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, "funcionario o unidad no encontrado")
	}
	if out == nil {
		return notFound(c, "funcionario no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar funcionarios
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        search   query  string  false  "Buscar por nombre o cargo"
// @Param        unit_id  query  string  false  "Filtrar por unidad"
// @Param        limit    query  int     false  "Límite (default 20, máx 100)"
// @Param        offset   query  int     false  "Offset"
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), c.Query("search"), c.Query("unit_id"), page)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar funcionario
// @Tags         employees
// @Security     Bearer
// @Param        id   path  string  true  "ID del funcionario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err, "funcionario no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
