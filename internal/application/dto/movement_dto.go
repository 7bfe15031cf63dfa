package dto

import "time"

// MovementResponse registro de auditoría de un cambio de inventario.
type MovementResponse struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	ProductCode string    `json:"codigo_producto"`
	ProductName string    `json:"nombre_producto"`
	Quantity    int64     `json:"cantidad"`
	Type        string    `json:"tipo"`
	Actor       string    `json:"usuario,omitempty"`
}

// MovementListResponse log completo en orden de inserción.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
