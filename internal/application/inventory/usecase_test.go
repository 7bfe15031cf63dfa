package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakny/ventafacil-api/internal/application/inventory"
	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/infrastructure/localstore"
)

func newEntryFixture(t *testing.T) (*inventory.RegisterEntryUseCase, *localstore.ProductRepo, *localstore.MovementRepo) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	products, err := localstore.NewProductRepository(store)
	require.NoError(t, err)
	movements, err := localstore.NewMovementRepository(store)
	require.NoError(t, err)
	return inventory.NewRegisterEntryUseCase(products, movements), products, movements
}

// Una entrada suma stock y deja exactamente un movimiento Entrada con delta
// positivo y el actor que la registró.
func TestRegisterEntry_SumaStockYDejaMovimiento(t *testing.T) {
	uc, products, movements := newEntryFixture(t)
	require.NoError(t, products.Upsert(&entity.Product{
		Code: "P1", Name: "Limón", Price: decimal.RequireFromString("20.00"), Quantity: 4,
	}))

	mov, err := uc.RegisterEntry("P1", 6, "Dakny")
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.Equal(t, entity.MovementTypeEntrada, mov.Type)
	assert.EqualValues(t, 6, mov.Quantity, "el delta de una Entrada es positivo")
	assert.Equal(t, "Dakny", mov.Actor)
	assert.Equal(t, "Limón", mov.ProductName)

	p, err := products.GetByCode("P1")
	require.NoError(t, err)
	assert.EqualValues(t, 10, p.Quantity)

	movs, err := movements.List()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, mov.ID, movs[0].ID)
}

func TestRegisterEntry_CantidadInvalida(t *testing.T) {
	uc, products, movements := newEntryFixture(t)
	require.NoError(t, products.Upsert(&entity.Product{
		Code: "P1", Name: "Limón", Price: decimal.RequireFromString("20.00"), Quantity: 4,
	}))

	_, err := uc.RegisterEntry("P1", 0, "Dakny")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = uc.RegisterEntry("P1", -3, "Dakny")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	movs, err := movements.List()
	require.NoError(t, err)
	assert.Empty(t, movs, "una entrada rechazada no deja movimientos")
}

func TestRegisterEntry_ProductoDesconocido(t *testing.T) {
	uc, _, _ := newEntryFixture(t)
	_, err := uc.RegisterEntry("NO-EXISTE", 5, "Dakny")
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}
