package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dakny/ventafacil-api/internal/application/cart"
	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/domain"
)

// CartHandler maneja el carrito de la sesión. La sesión es el username del
// token: cada usuario tiene su propio carrito en curso.
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito actual
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(GetUsername(c)))
}

// AddLine godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito se suman las cantidades y se conserva el precio original de la línea.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddLineRequest  true  "Código y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/lines [post]
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddLine(GetUsername(c), in.ProductCode, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad debe ser un entero positivo"})
		}
		if errors.Is(err, domain.ErrUnknownProduct) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_MISSING", Message: "el producto no existe en el catálogo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetLineQuantity godoc
// @Summary      Fijar cantidad de una línea
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Param        body  body  dto.SetLineQuantityRequest  true  "Cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/lines/{code} [put]
func (h *CartHandler) SetLineQuantity(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.SetLineQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetLineQuantity(GetUsername(c), code, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad debe ser un entero positivo"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la línea no está en el carrito"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar producto del carrito
// @Description  Quitar un producto que no está en el carrito no es un error.
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del producto"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/cart/lines/{code} [delete]
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	out, err := h.uc.RemoveLine(GetUsername(c), c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar carrito como pedido
// @Description  Congela las líneas del carrito en un pedido pendiente y vacía el carrito. El inventario no se toca hasta la liquidación.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitCartRequest  false  "Datos del cliente (opcional)"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/submit [post]
func (h *CartHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitCartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	order, err := h.uc.Submit(GetUsername(c), in.CustomerName, in.CustomerPhone)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}
