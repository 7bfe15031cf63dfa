package entity

import "time"

// Tipos de movimiento de inventario. Se conservan los valores que la
// aplicación siempre ha guardado en el log ("Entrada" / "Salida").
const (
	MovementTypeEntrada = "Entrada" // reposición / entrada de stock
	MovementTypeSalida  = "Salida"  // venta / salida de stock
)

// Movement es un registro de auditoría de un cambio de cantidad en el
// inventario. El log es append-only: nunca se muta ni se borra.
type Movement struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	ProductCode string    `json:"codigo_producto"`
	ProductName string    `json:"nombre_producto"`
	Quantity    int64     `json:"cantidad"` // delta con signo: positivo Entrada, negativo Salida
	Type        string    `json:"tipo"`
	Actor       string    `json:"usuario,omitempty"` // identidad de sesión que originó el movimiento
}
