package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dakny/ventafacil-api/internal/application/analytics"
	"github.com/dakny/ventafacil-api/internal/application/dto"
)

// DashboardHandler expone las métricas de la pantalla de inicio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Métricas del día
// @Description  Tamaño del catálogo y pedidos creados hoy (cantidad y monto).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
