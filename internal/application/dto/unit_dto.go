package dto

import "time"

// CreateUnitRequest entrada para crear una unidad.
type CreateUnitRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
	CNESCode int     `json:"cnes_code" validate:"required,gt=0,lte=2147483647"`
}

// UpdateUnitRequest entrada para actualizar una unidad.
type UpdateUnitRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
	CNESCode *int    `json:"cnes_code" validate:"omitempty,gt=0,lte=2147483647"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	CNESCode  int       `json:"cnes_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnitListResponse lista paginada de unidades.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
