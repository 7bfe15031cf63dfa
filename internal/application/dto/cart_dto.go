package dto

import "github.com/shopspring/decimal"

// AddLineRequest agrega un producto al carrito de la sesión.
type AddLineRequest struct {
	ProductCode string `json:"codigo_producto"`
	Quantity    int64  `json:"cantidad"`
}

// SetLineQuantityRequest fija la cantidad de una línea existente.
type SetLineQuantityRequest struct {
	Quantity int64 `json:"cantidad"`
}

// SubmitCartRequest envía el carrito como pedido.
type SubmitCartRequest struct {
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

// CartLineResponse línea del carrito con su total.
type CartLineResponse struct {
	ProductCode string          `json:"codigo_producto"`
	ProductName string          `json:"nombre_producto"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int64           `json:"cantidad"`
	LineTotal   decimal.Decimal `json:"total_linea"`
}

// CartResponse carrito de la sesión con total general.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}
