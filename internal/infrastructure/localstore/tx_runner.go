package localstore

import (
	"context"

	"github.com/dakny/ventafacil-api/internal/application/settlement"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

var _ settlement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta una unidad de trabajo que toca inventario, pedidos y
// movimientos como una sola unidad aparente: las unidades se serializan
// entre sí y, si fn falla, el estado de los tres repositorios se restaura
// al snapshot tomado al inicio (sin estado intermedio observable).
//
// Mientras la unidad está en curso mantiene el gate del Store en exclusiva,
// de modo que las operaciones sueltas sobre los repos (un submit de
// vendedor, una entrada de stock) esperan a que termine en vez de quedar
// atrapadas entre el snapshot y un rollback. fn recibe vistas atadas a la
// unidad; no debe usar los repositorios externos.
type TxRunner struct {
	store     *Store
	products  *ProductRepo
	orders    *OrderRepo
	movements *MovementRepo

	sem chan struct{}
}

// NewTxRunner construye el runner sobre los repositorios del Store.
// Los tres repositorios deben compartir el mismo Store.
func NewTxRunner(products *ProductRepo, orders *OrderRepo, movements *MovementRepo) *TxRunner {
	return &TxRunner{
		store:     products.store,
		products:  products,
		orders:    orders,
		movements: movements,
		sem:       make(chan struct{}, 1),
	}
}

// Run toma snapshots de los tres almacenes, ejecuta fn con repositorios
// atados a la unidad y hace rollback si fn retorna error. El contexto
// permite abortar la espera por otra unidad de trabajo en curso.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	movements repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case r.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-r.sem }()

	r.store.gate.Lock()
	defer r.store.gate.Unlock()

	productsSnap := r.products.snapshot()
	ordersSnap := r.orders.snapshot()
	movementsSnap := r.movements.snapshot()

	if err := fn(txProducts{r.products}, txOrders{r.orders}, txMovements{r.movements}); err != nil {
		r.products.restore(productsSnap)
		r.orders.restore(ordersSnap)
		r.movements.restore(movementsSnap)
		return err
	}
	return nil
}

// Vistas atadas a la unidad de trabajo: operan sin tomar el gate del Store,
// que Run ya tiene en exclusiva.

var _ repository.ProductRepository = txProducts{}

type txProducts struct{ r *ProductRepo }

func (t txProducts) GetByCode(code string) (*entity.Product, error) { return t.r.getByCode(code) }

func (t txProducts) List() ([]*entity.Product, error) { return t.r.list() }

func (t txProducts) Upsert(product *entity.Product) error { return t.r.upsert(product) }

func (t txProducts) Delete(code string) error { return t.r.deleteCode(code) }
func (t txProducts) AdjustQuantity(code string, delta int64) error {
	return t.r.adjustQuantity(code, delta)
}

var _ repository.OrderRepository = txOrders{}

type txOrders struct{ r *OrderRepo }

func (t txOrders) Put(order *entity.Order) error { return t.r.put(order) }

func (t txOrders) Get(orderID string) (*entity.Order, error) { return t.r.get(orderID) }

func (t txOrders) Remove(orderID string) (*entity.Order, error) { return t.r.remove(orderID) }

func (t txOrders) List() ([]*entity.Order, error) { return t.r.list() }

var _ repository.MovementRepository = txMovements{}

type txMovements struct{ r *MovementRepo }

func (t txMovements) Append(movement *entity.Movement) error { return t.r.appendOne(movement) }

func (t txMovements) List() ([]*entity.Movement, error) { return t.r.list() }
