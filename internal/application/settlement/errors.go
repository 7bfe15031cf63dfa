package settlement

import (
	"fmt"

	"github.com/dakny/ventafacil-api/internal/domain"
)

// ProductMissingError indica que un producto referenciado por el pedido fue
// eliminado del inventario después del submit.
type ProductMissingError struct {
	Code string
}

func (e *ProductMissingError) Error() string {
	return fmt.Sprintf("el producto %s ya no existe en el inventario", e.Code)
}

// Unwrap permite errors.Is(err, domain.ErrUnknownProduct).
func (e *ProductMissingError) Unwrap() error { return domain.ErrUnknownProduct }

// InsufficientStockError indica que la liquidación dejaría stock negativo.
// La liquidación completa falla de forma atómica: no hay descuento parcial.
type InsufficientStockError struct {
	Code      string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponibles %d, solicitados %d",
		e.Code, e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return domain.ErrInsufficientStock }
