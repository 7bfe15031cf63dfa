package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido. Un pedido presente en el libro de pedidos está PENDING;
// liquidarlo o cancelarlo lo remueve del libro (estados terminales, sin reintentos).
const (
	OrderStatusPending   = "PENDING"
	OrderStatusSettled   = "SETTLED"
	OrderStatusRejected  = "REJECTED"
	OrderStatusCancelled = "CANCELLED"
)

// Order es un pedido: un carrito enviado y aún no liquidado.
// Lines es la copia congelada del carrito al momento del submit.
type Order struct {
	ID            string     `json:"order_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	Lines         []CartLine `json:"lines"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Total devuelve la suma de precio*cantidad de las líneas del pedido.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}
