package localstore

import (
	"fmt"
	"sync"

	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el documento
// "products" (arreglo JSON de productos, como lo guardaba el editor de
// inventario original). El orden de inserción del catálogo se conserva.
//
// Las operaciones exportadas toman el gate del Store en modo lectura para no
// intercalarse con una unidad de trabajo en curso; las variantes sin gate las
// usa la unidad misma (ver tx_runner.go).
type ProductRepo struct {
	store *Store

	mu    sync.Mutex
	items []*entity.Product
	muts  uint64 // mutaciones desde la carga
}

// NewProductRepository carga el catálogo desde el documento "products".
// Un documento ausente o corrupto deja el catálogo vacío.
func NewProductRepository(store *Store) (*ProductRepo, error) {
	r := &ProductRepo{store: store}
	var items []*entity.Product
	if _, err := store.Read(KeyProducts, &items); err != nil {
		return nil, err
	}
	r.items = items
	return r, nil
}

// GetByCode obtiene un producto por código. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.getByCode(code)
}

func (r *ProductRepo) getByCode(code string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(code); i >= 0 {
		p := *r.items[i]
		return &p, nil
	}
	return nil, nil
}

// List devuelve el catálogo completo en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.list()
}

func (r *ProductRepo) list() ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, len(r.items))
	for i, p := range r.items {
		cp := *p
		out[i] = &cp
	}
	return out, nil
}

// Upsert crea o reemplaza el producto con ese código y persiste el documento.
func (r *ProductRepo) Upsert(product *entity.Product) error {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.upsert(product)
}

func (r *ProductRepo) upsert(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	if i := r.indexOf(product.Code); i >= 0 {
		r.items[i] = &cp
	} else {
		r.items = append(r.items, &cp)
	}
	r.muts++
	return r.save()
}

// Delete elimina el producto por código. Devuelve domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(code string) error {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.deleteCode(code)
}

func (r *ProductRepo) deleteCode(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(code)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	r.muts++
	return r.save()
}

// AdjustQuantity suma delta a la cantidad disponible del producto.
func (r *ProductRepo) AdjustQuantity(code string, delta int64) error {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.adjustQuantity(code, delta)
}

func (r *ProductRepo) adjustQuantity(code string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(code)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.items[i].Quantity += delta
	r.muts++
	return r.save()
}

// indexOf busca por código. Requiere r.mu tomado.
func (r *ProductRepo) indexOf(code string) int {
	for i := range r.items {
		if r.items[i].Code == code {
			return i
		}
	}
	return -1
}

// save vuelca el catálogo al documento "products". Requiere r.mu tomado.
// Si la escritura falla, el estado en memoria queda como autoritativo y el
// error se reporta al llamador.
func (r *ProductRepo) save() error {
	if err := r.store.Write(KeyProducts, r.items); err != nil {
		return fmt.Errorf("persistir productos: %w", err)
	}
	return nil
}

// productSnapshot captura el catálogo y su contador de mutaciones.
type productSnapshot struct {
	items []*entity.Product
	muts  uint64
}

// snapshot devuelve una copia profunda del catálogo (para TxRunner).
func (r *ProductRepo) snapshot() productSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make([]*entity.Product, len(r.items))
	for i, p := range r.items {
		cp := *p
		snap[i] = &cp
	}
	return productSnapshot{items: snap, muts: r.muts}
}

// restore repone el catálogo del snapshot y re-persiste (best-effort).
// No-op si nada mutó desde el snapshot: un fallo de validación que no tocó
// el catálogo no debe reescribir el documento.
func (r *ProductRepo) restore(snap productSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.muts == snap.muts {
		return
	}
	r.items = snap.items
	r.muts = snap.muts
	_ = r.save()
}
