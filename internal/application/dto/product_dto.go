package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el editor de inventario.
type CreateProductRequest struct {
	Code     string          `json:"codigo_producto"`
	Name     string          `json:"nombre_producto"`
	Price    decimal.Decimal `json:"precio"`
	Quantity int64           `json:"cantidad"`
}

// UpdateProductRequest edición manual de producto (campos opcionales).
type UpdateProductRequest struct {
	Name     *string          `json:"nombre_producto,omitempty"`
	Price    *decimal.Decimal `json:"precio,omitempty"`
	Quantity *int64           `json:"cantidad,omitempty"`
}

// RegisterEntryRequest reposición de stock (entrada de inventario).
type RegisterEntryRequest struct {
	Quantity int64 `json:"cantidad"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	Code      string          `json:"codigo_producto"`
	Name      string          `json:"nombre_producto"`
	Price     decimal.Decimal `json:"precio"`
	Quantity  int64           `json:"cantidad"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
