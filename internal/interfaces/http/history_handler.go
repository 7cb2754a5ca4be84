package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Chatarreria-api/internal/application/dto"
	"github.com/jhoicas/Chatarreria-api/internal/application/history"
)

// HistoryHandler maneja la consulta del historial de transacciones (solo admin).
type HistoryHandler struct {
	uc  *history.HistoryUseCase
	loc *time.Location
}

// NewHistoryHandler construye el handler del historial.
func NewHistoryHandler(uc *history.HistoryUseCase, loc *time.Location) *HistoryHandler {
	return &HistoryHandler{uc: uc, loc: loc}
}

// List godoc
// @Summary      Historial de transacciones (solo admin)
// @Tags         transacciones
// @Produce      json
// @Param        alcance  query  string  false  "todas (default) | hoy"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transacciones [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	scope := history.ScopeAll
	switch c.Query("alcance", string(history.ScopeAll)) {
	case string(history.ScopeToday):
		scope = history.ScopeToday
	case string(history.ScopeAll):
		scope = history.ScopeAll
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "alcance debe ser 'todas' o 'hoy'"})
	}

	records, err := h.uc.List(scope)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(history.ToResponse(scope, records, h.loc))
}
