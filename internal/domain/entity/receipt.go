package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptLine es una línea del recibo con su total ya calculado.
type ReceiptLine struct {
	ProductCode string          `json:"codigo_producto"`
	ProductName string          `json:"nombre_producto"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Quantity    int64           `json:"cantidad"`
	LineTotal   decimal.Decimal `json:"total_linea"`
}

// Receipt es el resumen legible de un pedido liquidado con éxito.
// Lo produce el motor de liquidación; el formateador solo lo consume.
type Receipt struct {
	OrderID       string          `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Lines         []ReceiptLine   `json:"lines"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	SettledAt     time.Time       `json:"settled_at"`
	SettledBy     string          `json:"settled_by,omitempty"`
}
