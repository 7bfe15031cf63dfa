package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del inventario.
// Code es la llave única (el codigo_producto del editor de inventario).
// Quantity solo lo muta el motor de liquidación (descuento por venta),
// el registro de entradas (reposición) o la edición manual.
type Product struct {
	Code      string          `json:"codigo_producto"`
	Name      string          `json:"nombre_producto"`
	Price     decimal.Decimal `json:"precio"`
	Quantity  int64           `json:"cantidad"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
