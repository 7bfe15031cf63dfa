package repository

import "github.com/dakny/ventafacil-api/internal/domain/entity"

// MovementRepository define el puerto del log de movimientos (append-only).
type MovementRepository interface {
	Append(movement *entity.Movement) error
	// List devuelve los movimientos en orden de inserción, releídos
	// completos desde el almacenamiento durable (sin cursor incremental).
	List() ([]*entity.Movement, error)
}
