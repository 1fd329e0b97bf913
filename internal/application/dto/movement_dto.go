package dto

import "time"

// RecordMovementRequest body para POST /api/movements.
// Quantity 0 se interpreta como 1 (valor por defecto).
type RecordMovementRequest struct {
	EquipmentID           string  `json:"equipment_id" validate:"required,uuid"`
	Type                  string  `json:"type" validate:"required,oneof=ENTRY EXIT"`
	Quantity              int     `json:"quantity" validate:"gte=0,lte=2147483647"`
	OriginEmployeeID      *string `json:"origin_employee_id" validate:"omitempty,uuid"`
	DestinationEmployeeID *string `json:"destination_employee_id" validate:"omitempty,uuid"`
	OriginUnitID          *string `json:"origin_unit_id" validate:"omitempty,uuid"`
	DestinationUnitID     *string `json:"destination_unit_id" validate:"omitempty,uuid"`
	Notes                 *string `json:"notes"`
}

// MovementListRequest filtros de GET /api/movements. Fechas en RFC3339 o YYYY-MM-DD.
type MovementListRequest struct {
	PageRequest
	EquipmentID           string `query:"equipment_id" validate:"omitempty,uuid"`
	Type                  string `query:"type"`
	From                  string `query:"from"`
	To                    string `query:"to"`
	OriginUnitID          string `query:"origin_unit_id" validate:"omitempty,uuid"`
	DestinationUnitID     string `query:"destination_unit_id" validate:"omitempty,uuid"`
	OriginEmployeeID      string `query:"origin_employee_id" validate:"omitempty,uuid"`
	DestinationEmployeeID string `query:"destination_employee_id" validate:"omitempty,uuid"`
	Search                string `query:"search"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID                    string    `json:"id"`
	EquipmentID           string    `json:"equipment_id"`
	Date                  time.Time `json:"date"`
	Type                  string    `json:"type"`
	Quantity              int       `json:"quantity"`
	OriginEmployeeID      *string   `json:"origin_employee_id"`
	DestinationEmployeeID *string   `json:"destination_employee_id"`
	OriginUnitID          *string   `json:"origin_unit_id"`
	DestinationUnitID     *string   `json:"destination_unit_id"`
	Notes                 *string   `json:"notes"`
	CreatedBy             string    `json:"created_by,omitempty"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
