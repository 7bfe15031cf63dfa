package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse representación de un pedido pendiente.
type OrderResponse struct {
	OrderID       string             `json:"order_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Lines         []CartLineResponse `json:"lines"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// OrderListResponse listado del libro de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// ReceiptLineResponse línea del recibo.
type ReceiptLineResponse struct {
	ProductCode string          `json:"codigo_producto"`
	ProductName string          `json:"nombre_producto"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int64           `json:"cantidad"`
	LineTotal   decimal.Decimal `json:"total_linea"`
}

// ReceiptResponse recibo de una liquidación exitosa.
type ReceiptResponse struct {
	OrderID       string                `json:"order_id"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone,omitempty"`
	Lines         []ReceiptLineResponse `json:"lines"`
	GrandTotal    decimal.Decimal       `json:"grand_total"`
	SettledAt     time.Time             `json:"settled_at"`
	SettledBy     string                `json:"settled_by,omitempty"`
}
