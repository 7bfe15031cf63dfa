package repository

import "github.com/dakny/ventafacil-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByCode devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	GetByCode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Upsert(product *entity.Product) error
	Delete(code string) error
	// AdjustQuantity suma delta a la cantidad disponible.
	// Devuelve domain.ErrNotFound si el código no existe.
	AdjustQuantity(code string, delta int64) error
}
