package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakny/ventafacil-api/internal/application/cart"
	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/infrastructure/localstore"
)

const session = "vendedor-1"

func newCartFixture(t *testing.T) (*cart.CartUseCase, *localstore.ProductRepo, *localstore.OrderRepo) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	products, err := localstore.NewProductRepository(store)
	require.NoError(t, err)
	orders, err := localstore.NewOrderRepository(store)
	require.NoError(t, err)
	return cart.NewCartUseCase(products, orders), products, orders
}

func seed(t *testing.T, products *localstore.ProductRepo, code, name, price string, qty int64) {
	t.Helper()
	require.NoError(t, products.Upsert(&entity.Product{
		Code:     code,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}))
}

// Agregar dos veces el mismo producto suma cantidades en una sola línea.
func TestAddLine_MismoProductoSumaCantidades(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.AddLine(session, "P1", 2)
	require.NoError(t, err)
	out, err := uc.AddLine(session, "P1", 3)
	require.NoError(t, err)

	require.Len(t, out.Lines, 1, "no debe duplicarse la línea")
	assert.EqualValues(t, 5, out.Lines[0].Quantity)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("100.00")))
}

// El precio de la línea se congela al agregarla: cambios posteriores del
// catálogo no afectan un carrito en curso.
func TestAddLine_PrecioCongeladoAlAgregar(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.AddLine(session, "P1", 1)
	require.NoError(t, err)

	// Sube el precio del catálogo.
	seed(t, products, "P1", "Limón", "35.00", 10)

	// Sumar más unidades conserva el precio original de la línea.
	out, err := uc.AddLine(session, "P1", 1)
	require.NoError(t, err)
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].UnitPrice.Equal(decimal.RequireFromString("20.00")),
		"la línea conserva el precio capturado al agregar")
}

func TestAddLine_CantidadInvalida(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.AddLine(session, "P1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = uc.AddLine(session, "P1", -2)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestAddLine_ProductoDesconocido(t *testing.T) {
	uc, _, _ := newCartFixture(t)
	_, err := uc.AddLine(session, "NO-EXISTE", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}

// Agregar al carrito no descuenta inventario: solo la liquidación lo hace.
func TestAddLine_NoDescuentaInventario(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.AddLine(session, "P1", 4)
	require.NoError(t, err)

	p, err := products.GetByCode("P1")
	require.NoError(t, err)
	assert.EqualValues(t, 10, p.Quantity)
}

func TestSetLineQuantity_LineaAusente(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.SetLineQuantity(session, "P1", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Quitar un producto que no está en el carrito no es un error.
func TestRemoveLine_AusenteEsNoOp(t *testing.T) {
	uc, _, _ := newCartFixture(t)
	out, err := uc.RemoveLine(session, "P1")
	require.NoError(t, err)
	assert.Empty(t, out.Lines)
}

// Cada sesión tiene su propio carrito.
func TestCarritosPorSesionSonIndependientes(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.AddLine("sesion-a", "P1", 2)
	require.NoError(t, err)

	out := uc.Get("sesion-b")
	assert.Empty(t, out.Lines, "el carrito de otra sesión debe estar vacío")
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

// El submit congela las líneas como pedido pendiente y vacía el carrito,
// sin tocar inventario.
func TestSubmit_CongelaPedidoYLimpiaCarrito(t *testing.T) {
	uc, products, orders := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.AddLine(session, "P1", 3)
	require.NoError(t, err)

	order, err := uc.Submit(session, "María", "3001234567")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "María", order.CustomerName)
	assert.Equal(t, "3001234567", order.CustomerPhone)
	require.Len(t, order.Lines, 1)
	assert.EqualValues(t, 3, order.Lines[0].Quantity)

	// Quedó en el libro de pedidos.
	stored, err := orders.Get(order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// El carrito quedó vacío y el inventario intacto.
	assert.Empty(t, uc.Get(session).Lines)
	p, err := products.GetByCode("P1")
	require.NoError(t, err)
	assert.EqualValues(t, 10, p.Quantity)
}

// Sin nombre de cliente, el pedido queda a nombre de la sesión.
func TestSubmit_ClientePorDefectoEsLaSesion(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 10)

	_, err := uc.AddLine(session, "P1", 1)
	require.NoError(t, err)

	order, err := uc.Submit(session, "", "")
	require.NoError(t, err)
	assert.Equal(t, session, order.CustomerName)
}

// Enviar un carrito vacío falla y no deja nada en el libro de pedidos.
func TestSubmit_CarritoVacio(t *testing.T) {
	uc, _, orders := newCartFixture(t)

	_, err := uc.Submit(session, "María", "")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	list, err := orders.List()
	require.NoError(t, err)
	assert.Empty(t, list, "un submit fallido no deja pedidos")
}

// Submits consecutivos generan IDs distintos.
func TestSubmit_IDsUnicos(t *testing.T) {
	uc, products, _ := newCartFixture(t)
	seed(t, products, "P1", "Limón", "20.00", 100)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		_, err := uc.AddLine(session, "P1", 1)
		require.NoError(t, err)
		order, err := uc.Submit(session, "", "")
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "ID repetido: %s", order.ID)
		seen[order.ID] = true
	}
}
