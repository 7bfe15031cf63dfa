package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dakny/ventafacil-api/internal/application/dto"
	"github.com/dakny/ventafacil-api/internal/domain/entity"
	"github.com/dakny/ventafacil-api/internal/domain/repository"
)

// MovementHandler expone el log de movimientos de inventario (solo lectura).
type MovementHandler struct {
	movements repository.MovementRepository
}

// NewMovementHandler construye el handler.
func NewMovementHandler(movements repository.MovementRepository) *MovementHandler {
	return &MovementHandler{movements: movements}
}

// List godoc
// @Summary      Listar movimientos de inventario
// @Description  Devuelve el log completo en orden de inserción: entradas de stock y salidas por ventas.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movements, err := h.movements.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.MovementListResponse{Items: make([]dto.MovementResponse, 0, len(movements)), Total: len(movements)}
	for _, m := range movements {
		out.Items = append(out.Items, *toMovementResponse(m))
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		Timestamp:   m.Timestamp,
		ProductCode: m.ProductCode,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Type:        m.Type,
		Actor:       m.Actor,
	}
}
