package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/patrimonio-api/internal/application/auth"
	"github.com/jhoicas/patrimonio-api/internal/application/inventory"
	"github.com/jhoicas/patrimonio-api/internal/application/usecase"
	"github.com/jhoicas/patrimonio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	UnitUC         *usecase.UnitUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	EquipmentUC    *usecase.EquipmentUseCase
	UserUC         *usecase.UserUseCase
	RecordMovement *inventory.RecordMovementUseCase
	MovementQuery  *inventory.MovementQueryUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
// Lecturas: cualquier rol autenticado. Escrituras: admin u operator. Usuarios: admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	readers := RequireRole(entity.RoleAdmin, entity.RoleOperator, entity.RoleViewer)
	writers := RequireRole(entity.RoleAdmin, entity.RoleOperator)
	admins := RequireRole(entity.RoleAdmin)
	authn := AuthMiddleware(deps.JWTSecret)

	registerAuthRoutes(api.Group("/auth"), NewAuthHandler(deps.AuthUC, deps.UserUC), authn, readers, admins)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", authn)

	registerCRUDRoutes(protected.Group("/categories"), NewCategoryHandler(deps.CategoryUC), readers, writers)
	registerCRUDRoutes(protected.Group("/units"), NewUnitHandler(deps.UnitUC), readers, writers)
	registerCRUDRoutes(protected.Group("/employees"), NewEmployeeHandler(deps.EmployeeUC), readers, writers)
	registerEquipmentRoutes(protected.Group("/equipment"), NewEquipmentHandler(deps.EquipmentUC, deps.MovementQuery), readers, writers)
	registerMovementRoutes(protected.Group("/movements"), NewMovementHandler(deps.RecordMovement, deps.MovementQuery), readers, writers)
}

// crudHandler handlers de catálogo con las cinco operaciones básicas.
type crudHandler interface {
	List(c *fiber.Ctx) error
	GetByID(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

func registerAuthRoutes(r fiber.Router, h *AuthHandler, authn, readers, admins fiber.Handler) {
	r.Post("/login", h.Login)
	r.Post("/register", authn, admins, h.Register)
	r.Get("/me", authn, readers, h.Me)
}

func registerCRUDRoutes(r fiber.Router, h crudHandler, readers, writers fiber.Handler) {
	r.Get("/", readers, h.List)
	r.Get("/:id", readers, h.GetByID)
	r.Post("/", writers, h.Create)
	r.Put("/:id", writers, h.Update)
	r.Delete("/:id", writers, h.Delete)
}

func registerEquipmentRoutes(r fiber.Router, h *EquipmentHandler, readers, writers fiber.Handler) {
	r.Get("/", readers, h.List)
	r.Get("/:id", readers, h.GetByID)
	r.Get("/:id/movements", readers, h.Movements)
	r.Post("/", writers, h.Create)
	r.Put("/:id", writers, h.Update)
	r.Delete("/:id", writers, h.Delete)
}

func registerMovementRoutes(r fiber.Router, h *MovementHandler, readers, writers fiber.Handler) {
	r.Get("/", readers, h.List)
	r.Get("/:id", readers, h.GetByID)
	r.Post("/", writers, h.Record)
}
