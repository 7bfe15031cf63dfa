package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// DashboardUseCase arma las métricas de la pantalla de inicio: tamaño del
// catálogo y "ventas del día", que la aplicación siempre ha contado como los
// pedidos creados hoy que siguen en el libro de pedidos.
type DashboardUseCase struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, orders repository.OrderRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, orders: orders}
}

// Summary calcula las métricas del día usando now como referencia.
func (uc *DashboardUseCase) Summary(now time.Time) (*dto.DashboardResponse, error) {
	catalog, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}

	year, month, day := now.Date()
	salesCount := 0
	salesAmount := decimal.Zero
	for _, o := range orders {
		oy, om, od := o.CreatedAt.In(now.Location()).Date()
		if oy == year && om == month && od == day {
			salesCount++
			salesAmount = salesAmount.Add(o.Total())
		}
	}

	return &dto.DashboardResponse{
		InventoryCount:   len(catalog),
		DailySalesCount:  salesCount,
		DailySalesAmount: salesAmount,
	}, nil
}
