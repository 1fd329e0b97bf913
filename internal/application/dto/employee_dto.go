package dto

import "time"

// CreateEmployeeRequest entrada para crear un funcionario.
type CreateEmployeeRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=200"`
	Role   *string `json:"role" validate:"omitempty,max=100"`
	UnitID *string `json:"unit_id" validate:"omitempty,uuid"`
}

// UpdateEmployeeRequest entrada para actualizar un funcionario.
// ClearUnit desvincula la unidad (UnitID nil no modifica).
type UpdateEmployeeRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role      *string `json:"role" validate:"omitempty,max=100"`
	UnitID    *string `json:"unit_id" validate:"omitempty,uuid"`
	ClearUnit bool    `json:"clear_unit"`
}

// EmployeeResponse salida de un funcionario.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      *string   `json:"role"`
	UnitID    *string   `json:"unit_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeListResponse lista paginada de funcionarios.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
