package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUnknownProduct    = errors.New("producto no existe en el inventario")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor que cero")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrOrderNotFound     = errors.New("pedido no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)
