package settlement

import (
	"context"

	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// TxRunner ejecuta una función sobre los tres almacenes (inventario, libro
// de pedidos y log de movimientos) como una sola unidad de trabajo.
// Garantiza atomicidad para el motor de liquidación: si fn retorna error,
// ningún almacén queda mutado, y las operaciones que lleguen por fuera de
// la unidad no se pierden en el rollback. fn debe operar únicamente sobre
// los repositorios que recibe.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		movements repository.MovementRepository,
	) error) error
}
