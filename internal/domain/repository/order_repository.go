package repository

import "github.com/dakny/ventafacil-api/internal/domain/entity"

// OrderRepository define el puerto del libro de pedidos (pedidos pendientes).
// Un pedido presente en el libro está pendiente; remover es idempotente en el
// sentido de que un pedido ya removido no puede volverse a liquidar.
type OrderRepository interface {
	Put(order *entity.Order) error
	// Get devuelve (nil, nil) si el pedido no existe.
	Get(orderID string) (*entity.Order, error)
	// Remove quita el pedido del libro y lo devuelve.
	// Devuelve domain.ErrOrderNotFound si no existe.
	Remove(orderID string) (*entity.Order, error)
	List() ([]*entity.Order, error)
}
