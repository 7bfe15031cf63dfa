package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/application/receipt"
	"github.com/dakny/ventafacil-api/internal/application/settlement"
	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// PedidoHandler maneja la cola de pedidos pendientes: listado, liquidación
// y cancelación.
type PedidoHandler struct {
	settle *settlement.SettlementUseCase
	orders repository.OrderRepository
	pdf    receipt.PDFGenerator
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(settle *settlement.SettlementUseCase, orders repository.OrderRepository, pdf receipt.PDFGenerator) *PedidoHandler {
	return &PedidoHandler{settle: settle, orders: orders, pdf: pdf}
}

// List godoc
// @Summary      Listar pedidos pendientes
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(orders)), Total: len(orders)}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(toOrderResponse(order))
}

// Settle godoc
// @Summary      Liquidar pedido
// @Description  Descuenta el inventario, registra las salidas en el log y quita el pedido de la cola, todo o nada. Con ?format=text devuelve la tirilla en texto plano y con ?format=pdf el recibo en PDF.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del pedido"
// @Param        format  query  string  false  "json (default), text o pdf"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/settle [post]
func (h *PedidoHandler) Settle(c *fiber.Ctx) error {
	rec, err := h.settle.Settle(c.Context(), c.Params("id"), GetUsername(c))
	if err != nil {
		return settleError(c, err)
	}

	switch c.Query("format", "json") {
	case "text":
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(receipt.FormatText(rec))
	case "pdf":
		doc, err := h.pdf.GenerateReceiptPDF(c.Context(), rec)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+rec.OrderID+`.pdf"`)
		return c.Send(doc)
	default:
		return c.JSON(toReceiptResponse(rec))
	}
}

// Cancel godoc
// @Summary      Cancelar pedido
// @Description  Quita el pedido de la cola sin tocar inventario ni log de movimientos.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/cancel [post]
func (h *PedidoHandler) Cancel(c *fiber.Ctx) error {
	order, err := h.settle.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toOrderResponse(order))
}

// settleError traduce los errores tipados del motor de liquidación a HTTP.
func settleError(c *fiber.Ctx, err error) error {
	var missing *settlement.ProductMissingError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_MISSING", Message: missing.Error()})
	}
	var stock *settlement.InsufficientStockError
	if errors.As(err, &stock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stock.Error()})
	}
	if errors.Is(err, domain.ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// ── Mapeo entity → dto ────────────────────────────────────────────────────────

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	lines := make([]dto.CartLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.CartLineResponse{
			ProductCode: l.ProductCode,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			LineTotal:   l.LineTotal(),
		})
	}
	return &dto.OrderResponse{
		OrderID:       o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Lines:         lines,
		Total:         o.Total(),
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	lines := make([]dto.ReceiptLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, dto.ReceiptLineResponse{
			ProductCode: l.ProductCode,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			LineTotal:   l.LineTotal,
		})
	}
	return &dto.ReceiptResponse{
		OrderID:       r.OrderID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Lines:         lines,
		GrandTotal:    r.GrandTotal,
		SettledAt:     r.SettledAt,
		SettledBy:     r.SettledBy,
	}
}
