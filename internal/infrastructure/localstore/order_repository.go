package localstore

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del libro de pedidos sobre el documento "pedidos"
// (mapa JSON orderId -> pedido). Al cargar normaliza las formas históricas
// del registro a la forma canónica de entity.Order:
//
//   - arreglo plano de líneas de carrito (la forma más antigua)
//   - {cartItems, username, phoneNumber}
//   - la forma canónica actual
//
// Las operaciones exportadas toman el gate del Store en modo lectura para no
// intercalarse con una unidad de trabajo en curso (ver tx_runner.go).
type OrderRepo struct {
	store *Store

	mu     sync.Mutex
	orders map[string]*entity.Order
	muts   uint64 // mutaciones desde la carga
}

// NewOrderRepository carga y normaliza el libro de pedidos.
func NewOrderRepository(store *Store) (*OrderRepo, error) {
	r := &OrderRepo{store: store, orders: make(map[string]*entity.Order)}
	var raw map[string]json.RawMessage
	if _, err := store.Read(KeyPedidos, &raw); err != nil {
		return nil, err
	}
	for key, doc := range raw {
		order := normalizePedido(key, doc)
		if order == nil {
			// Registro irreconocible: se descarta en vez de propagar un crash.
			continue
		}
		r.orders[order.ID] = order
	}
	return r, nil
}

// Put guarda el pedido en el libro y persiste el documento.
func (r *OrderRepo) Put(order *entity.Order) error {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.put(order)
}

func (r *OrderRepo) put(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneOrder(order)
	r.orders[cp.ID] = cp
	r.muts++
	return r.save()
}

// Get obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) Get(orderID string) (*entity.Order, error) {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.get(orderID)
}

func (r *OrderRepo) get(orderID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[orderID]; ok {
		return cloneOrder(o), nil
	}
	return nil, nil
}

// Remove quita el pedido del libro y lo devuelve. Un pedido ya removido no
// puede volverse a liquidar: la segunda remoción devuelve ErrOrderNotFound.
func (r *OrderRepo) Remove(orderID string) (*entity.Order, error) {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.remove(orderID)
}

func (r *OrderRepo) remove(orderID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	delete(r.orders, orderID)
	r.muts++
	if err := r.save(); err != nil {
		return nil, err
	}
	return cloneOrder(o), nil
}

// List devuelve los pedidos pendientes ordenados por fecha de creación.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	r.store.gate.RLock()
	defer r.store.gate.RUnlock()
	return r.list()
}

func (r *OrderRepo) list() ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// save vuelca el libro al documento "pedidos". Requiere r.mu tomado.
func (r *OrderRepo) save() error {
	if err := r.store.Write(KeyPedidos, r.orders); err != nil {
		return fmt.Errorf("persistir pedidos: %w", err)
	}
	return nil
}

// orderSnapshot captura el libro y su contador de mutaciones.
type orderSnapshot struct {
	orders map[string]*entity.Order
	muts   uint64
}

// snapshot devuelve una copia profunda del libro (para TxRunner).
func (r *OrderRepo) snapshot() orderSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]*entity.Order, len(r.orders))
	for id, o := range r.orders {
		snap[id] = cloneOrder(o)
	}
	return orderSnapshot{orders: snap, muts: r.muts}
}

// restore repone el libro del snapshot y re-persiste (best-effort).
// No-op si nada mutó desde el snapshot.
func (r *OrderRepo) restore(snap orderSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.muts == snap.muts {
		return
	}
	r.orders = snap.orders
	r.muts = snap.muts
	_ = r.save()
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Lines = make([]entity.CartLine, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return &cp
}

// legacyPedido es la forma intermedia {cartItems, username, phoneNumber}.
type legacyPedido struct {
	CartItems   []entity.CartLine `json:"cartItems"`
	Username    string            `json:"username"`
	PhoneNumber string            `json:"phoneNumber"`
}

// normalizePedido convierte cualquiera de las formas históricas a la forma
// canónica. Devuelve nil si el registro no coincide con ninguna.
func normalizePedido(key string, doc json.RawMessage) *entity.Order {
	// Forma canónica
	var canonical entity.Order
	if err := json.Unmarshal(doc, &canonical); err == nil && canonical.ID != "" && canonical.Lines != nil {
		if canonical.Status == "" {
			canonical.Status = entity.OrderStatusPending
		}
		return &canonical
	}

	createdAt := createdAtFromKey(key)

	// Forma intermedia {cartItems, username, phoneNumber}
	var legacy legacyPedido
	if err := json.Unmarshal(doc, &legacy); err == nil && legacy.CartItems != nil {
		return &entity.Order{
			ID:            key,
			CustomerName:  legacy.Username,
			CustomerPhone: legacy.PhoneNumber,
			Lines:         legacy.CartItems,
			Status:        entity.OrderStatusPending,
			CreatedAt:     createdAt,
		}
	}

	// Forma más antigua: arreglo plano de líneas
	var lines []entity.CartLine
	if err := json.Unmarshal(doc, &lines); err == nil && lines != nil {
		return &entity.Order{
			ID:        key,
			Lines:     lines,
			Status:    entity.OrderStatusPending,
			CreatedAt: createdAt,
		}
	}

	return nil
}

// createdAtFromKey recupera la fecha de las llaves históricas "pedido_<millis>".
func createdAtFromKey(key string) time.Time {
	parts := strings.Split(key, "_")
	if len(parts) == 2 {
		if millis, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			return time.UnixMilli(millis)
		}
	}
	return time.Time{}
}
