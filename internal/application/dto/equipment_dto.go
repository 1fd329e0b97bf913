package dto

import "time"

// CreateEquipmentRequest entrada para registrar un equipo.
type CreateEquipmentRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=200"`
	CategoryID      string  `json:"category_id" validate:"required,uuid"`
	PatrimonyNumber *string `json:"patrimony_number" validate:"omitempty,max=50"`
	Description     *string `json:"description"`
	Notes           *string `json:"notes"`
	EmployeeID      *string `json:"employee_id" validate:"omitempty,uuid"`
	UnitID          *string `json:"unit_id" validate:"omitempty,uuid"`
	StockQuantity   int     `json:"stock_quantity" validate:"gte=0,lte=2147483647"`
	Status          string  `json:"status" validate:"omitempty,oneof=WORKING DEFECTIVE BROKEN STOLEN MAINTENANCE IN_STOCK OUT_OF_STOCK"`
}

// UpdateEquipmentRequest entrada para actualizar un equipo. Los punteros nil no modifican.
type UpdateEquipmentRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID      *string `json:"category_id" validate:"omitempty,uuid"`
	PatrimonyNumber *string `json:"patrimony_number" validate:"omitempty,max=50"`
	Description     *string `json:"description"`
	Notes           *string `json:"notes"`
	EmployeeID      *string `json:"employee_id" validate:"omitempty,uuid"`
	UnitID          *string `json:"unit_id" validate:"omitempty,uuid"`
	StockQuantity   *int    `json:"stock_quantity" validate:"omitempty,gte=0,lte=2147483647"`
	Status          *string `json:"status" validate:"omitempty,oneof=WORKING DEFECTIVE BROKEN STOLEN MAINTENANCE IN_STOCK OUT_OF_STOCK"`
}

// EquipmentListRequest filtros de GET /api/equipment.
type EquipmentListRequest struct {
	PageRequest
	Search     string `query:"search"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
	Status     string `query:"status"`
	EmployeeID string `query:"employee_id" validate:"omitempty,uuid"`
	UnitID     string `query:"unit_id" validate:"omitempty,uuid"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID              string    `json:"id"`
	DisplayName     string    `json:"display_name"`
	Name            string    `json:"name"`
	CategoryID      string    `json:"category_id"`
	PatrimonyNumber *string   `json:"patrimony_number"`
	Description     *string   `json:"description"`
	Notes           *string   `json:"notes"`
	EmployeeID      *string   `json:"employee_id"`
	UnitID          *string   `json:"unit_id"`
	StockQuantity   int       `json:"stock_quantity"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EquipmentListResponse lista paginada de equipos.
type EquipmentListResponse struct {
	Items []EquipmentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
