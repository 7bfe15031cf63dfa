package dto

import "github.com/shopspring/decimal"

// DashboardResponse métricas de la pantalla de inicio: tamaño del catálogo
// y ventas del día (pedidos creados hoy en el libro de pedidos).
type DashboardResponse struct {
	InventoryCount   int             `json:"inventory_count"`
	DailySalesCount  int             `json:"daily_sales_count"`
	DailySalesAmount decimal.Decimal `json:"daily_sales_amount"`
}
