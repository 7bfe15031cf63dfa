package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// RegisterEntryUseCase registra entradas de inventario (reposición): suma la
// cantidad al producto y agrega un movimiento de Entrada al log de auditoría.
// Las salidas las registra únicamente el motor de liquidación.
type RegisterEntryUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
}

// NewRegisterEntryUseCase construye el caso de uso.
func NewRegisterEntryUseCase(products repository.ProductRepository, movements repository.MovementRepository) *RegisterEntryUseCase {
	return &RegisterEntryUseCase{products: products, movements: movements}
}

// RegisterEntry repone quantity unidades del producto. actor es la identidad
// de sesión que registra la entrada.
func (uc *RegisterEntryUseCase) RegisterEntry(code string, quantity int64, actor string) (*entity.Movement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.products.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrUnknownProduct
	}
	if err := uc.products.AdjustQuantity(code, quantity); err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		ProductCode: product.Code,
		ProductName: product.Name,
		Quantity:    quantity,
		Type:        entity.MovementTypeEntrada,
		Actor:       actor,
	}
	if err := uc.movements.Append(mov); err != nil {
		return nil, err
	}
	return mov, nil
}
