package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// CartUseCase arma carritos por sesión contra el inventario vigente.
// Los carritos viven solo en memoria (estado de pantalla, no durable);
// el submit los congela como pedido en el libro de pedidos.
type CartUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository

	mu    sync.Mutex
	carts map[string]*entity.Cart // por identidad de sesión
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(products repository.ProductRepository, orders repository.OrderRepository) *CartUseCase {
	return &CartUseCase{
		products: products,
		orders:   orders,
		carts:    make(map[string]*entity.Cart),
	}
}

// AddLine agrega quantity unidades del producto al carrito de la sesión,
// capturando el precio vigente en ese momento. Si ya hay una línea con ese
// código, suma la cantidad en vez de duplicarla.
func (uc *CartUseCase) AddLine(session, productCode string, quantity int64) (*dto.CartResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := uc.products.GetByCode(productCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrUnknownProduct
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(session)
	c.Merge(entity.CartLine{
		ProductCode: product.Code,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	})
	return toCartResponse(c), nil
}

// RemoveLine elimina la línea del carrito; no-op si no existe.
func (uc *CartUseCase) RemoveLine(session, productCode string) (*dto.CartResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(session)
	c.Remove(productCode)
	return toCartResponse(c), nil
}

// SetLineQuantity fija la cantidad de una línea existente. El precio
// capturado al agregar no se revalida.
func (uc *CartUseCase) SetLineQuantity(session, productCode string, quantity int64) (*dto.CartResponse, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(session)
	i := c.Find(productCode)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	c.Lines[i].Quantity = quantity
	return toCartResponse(c), nil
}

// Get devuelve el carrito de la sesión con su total.
func (uc *CartUseCase) Get(session string) *dto.CartResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return toCartResponse(uc.cart(session))
}

// Submit congela el carrito como pedido bajo un ID nuevo, lo guarda en el
// libro de pedidos y limpia el carrito. El ID se genera verificando que no
// exista ya en el libro (se regenera ante colisión). customerName vacío
// toma la identidad de la sesión.
func (uc *CartUseCase) Submit(session, customerName, customerPhone string) (*entity.Order, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	c := uc.cart(session)
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if customerName == "" {
		customerName = session
	}

	orderID, err := uc.newOrderID()
	if err != nil {
		return nil, err
	}
	order := &entity.Order{
		ID:            orderID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Lines:         c.Snapshot(),
		Status:        entity.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := uc.orders.Put(order); err != nil {
		return nil, err
	}
	delete(uc.carts, session)
	return order, nil
}

// cart devuelve el carrito de la sesión, creándolo si no existe.
// Requiere uc.mu tomado.
func (uc *CartUseCase) cart(session string) *entity.Cart {
	c, ok := uc.carts[session]
	if !ok {
		c = &entity.Cart{}
		uc.carts[session] = c
	}
	return c
}

// newOrderID genera un ID opaco único dentro del libro de pedidos.
// El esquema histórico derivado del reloj podía colisionar ante submits
// rápidos; aquí se verifica la ausencia en el libro antes de aceptar el ID.
func (uc *CartUseCase) newOrderID() (string, error) {
	for {
		id := uuid.New().String()
		existing, err := uc.orders.Get(id)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return id, nil
		}
	}
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	lines := make([]dto.CartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = dto.CartLineResponse{
			ProductCode: l.ProductCode,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			LineTotal:   l.LineTotal(),
		}
	}
	return &dto.CartResponse{Lines: lines, Total: c.Total()}
}
