package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/application/usecase"
	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/infrastructure/localstore"
)

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	repo, err := localstore.NewProductRepository(store)
	require.NoError(t, err)
	return usecase.NewProductUseCase(repo)
}

func createReq(code, name, price string, qty int64) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:     code,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
}

func TestCreate_YLectura(t *testing.T) {
	uc := newProductUC(t)

	out, err := uc.Create(createReq("P1", "Limón", "20.00", 10))
	require.NoError(t, err)
	assert.Equal(t, "P1", out.Code)
	assert.False(t, out.CreatedAt.IsZero())

	got, err := uc.GetByCode("P1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Limón", got.Name)
	assert.EqualValues(t, 10, got.Quantity)
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Create(createReq("P1", "Limón", "20.00", 10))
	require.NoError(t, err)

	_, err = uc.Create(createReq("P1", "Otro", "5.00", 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validaciones(t *testing.T) {
	uc := newProductUC(t)

	_, err := uc.Create(createReq("", "Limón", "20.00", 10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "código vacío")

	_, err = uc.Create(createReq("P1", "", "20.00", 10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(createReq("P1", "Limón", "-1.00", 10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(createReq("P1", "Limón", "20.00", -5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")
}

func TestUpdate_CamposParciales(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Create(createReq("P1", "Limón", "20.00", 10))
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("25.00")
	out, err := uc.Update("P1", dto.UpdateProductRequest{Price: &nuevoPrecio})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Price.Equal(nuevoPrecio))
	assert.Equal(t, "Limón", out.Name, "los campos no enviados no cambian")
	assert.EqualValues(t, 10, out.Quantity)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := newProductUC(t)
	nombre := "Nuevo"
	out, err := uc.Update("NO-EXISTE", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdate_NombreVacioInvalido(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Create(createReq("P1", "Limón", "20.00", 10))
	require.NoError(t, err)

	vacio := ""
	_, err = uc.Update("P1", dto.UpdateProductRequest{Name: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Create(createReq("P1", "Limón", "20.00", 10))
	require.NoError(t, err)

	require.NoError(t, uc.Delete("P1"))
	got, err := uc.GetByCode("P1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete("P1"), domain.ErrNotFound)
}

// La búsqueda no distingue mayúsculas ni tildes: "limon" encuentra "Limón".
func TestList_BusquedaSinTildes(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Create(createReq("P1", "Limón Tahití", "20.00", 10))
	require.NoError(t, err)
	_, err = uc.Create(createReq("P2", "Arroz", "10.00", 5))
	require.NoError(t, err)

	out, err := uc.List("limon")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "P1", out.Items[0].Code)

	out, err = uc.List("LIMÓN")
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "mayúsculas con tilde también emparejan")

	// También empareja por código.
	out, err = uc.List("p2")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "P2", out.Items[0].Code)
}

func TestList_SinFiltroDevuelveTodo(t *testing.T) {
	uc := newProductUC(t)
	_, err := uc.Create(createReq("P1", "Limón", "20.00", 10))
	require.NoError(t, err)
	_, err = uc.Create(createReq("P2", "Arroz", "10.00", 5))
	require.NoError(t, err)

	out, err := uc.List("")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}
