package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dakny/ventafacil-api/internal/domain"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// SettlementUseCase es el motor de liquidación: convierte un pedido
// pendiente en descuentos de inventario y registros de auditoría, o lo
// rechaza sin tocar ningún almacén. Máquina de estados por pedido:
// Pending -> {Settled, Rejected, Cancelled}, estados terminales.
type SettlementUseCase struct {
	txRunner TxRunner
	orders   repository.OrderRepository
}

// NewSettlementUseCase construye el motor de liquidación.
func NewSettlementUseCase(txRunner TxRunner, orders repository.OrderRepository) *SettlementUseCase {
	return &SettlementUseCase{txRunner: txRunner, orders: orders}
}

// Settle liquida el pedido: valida todas las líneas contra el inventario
// actual y, solo si todas pasan, descuenta el stock, agrega un movimiento de
// Salida por producto distinto, remueve el pedido del libro y devuelve el
// recibo. Ante cualquier fallo ningún almacén queda mutado y el pedido sigue
// pendiente. actor es la identidad de sesión que dispara la liquidación.
func (uc *SettlementUseCase) Settle(ctx context.Context, orderID, actor string) (*entity.Receipt, error) {
	var receipt *entity.Receipt
	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		movements repository.MovementRepository,
	) error {
		order, err := orders.Get(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			// Ya liquidado o nunca existió: el libro no distingue ambas causas.
			return domain.ErrOrderNotFound
		}

		// Fase de validación: agrega cantidades por producto (los pedidos
		// históricos pueden repetir código) y verifica todo antes de mutar.
		requested := make(map[string]int64, len(order.Lines))
		codes := make([]string, 0, len(order.Lines))
		names := make(map[string]string, len(order.Lines))
		for _, line := range order.Lines {
			if _, seen := requested[line.ProductCode]; !seen {
				codes = append(codes, line.ProductCode)
			}
			requested[line.ProductCode] += line.Quantity
			names[line.ProductCode] = line.ProductName
		}

		for _, code := range codes {
			product, err := products.GetByCode(code)
			if err != nil {
				return err
			}
			if product == nil {
				return &ProductMissingError{Code: code}
			}
			if product.Quantity-requested[code] < 0 {
				return &InsufficientStockError{
					Code:      code,
					Available: product.Quantity,
					Requested: requested[code],
				}
			}
			// El nombre actual del catálogo manda sobre el congelado en la línea.
			names[code] = product.Name
		}

		// Fase de aplicación: todo o nada. Exactamente un movimiento de
		// Salida por producto distinto del pedido.
		now := time.Now()
		for _, code := range codes {
			if err := products.AdjustQuantity(code, -requested[code]); err != nil {
				return err
			}
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				Timestamp:   now,
				ProductCode: code,
				ProductName: names[code],
				Quantity:    -requested[code],
				Type:        entity.MovementTypeSalida,
				Actor:       actor,
			}
			if err := movements.Append(mov); err != nil {
				return err
			}
		}
		if _, err := orders.Remove(orderID); err != nil {
			return err
		}

		receipt = buildReceipt(order, now, actor)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Cancel remueve el pedido del libro sin tocar inventario ni log de
// movimientos. Devuelve ErrOrderNotFound si no existe.
func (uc *SettlementUseCase) Cancel(_ context.Context, orderID string) (*entity.Order, error) {
	order, err := uc.orders.Remove(orderID)
	if err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusCancelled
	return order, nil
}

// buildReceipt arma el recibo con totales por línea y total general.
func buildReceipt(order *entity.Order, settledAt time.Time, actor string) *entity.Receipt {
	lines := make([]entity.ReceiptLine, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = entity.ReceiptLine{
			ProductCode: l.ProductCode,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			LineTotal:   l.LineTotal(),
		}
	}
	return &entity.Receipt{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Lines:         lines,
		GrandTotal:    order.Total(),
		SettledAt:     settledAt,
		SettledBy:     actor,
	}
}
