package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/canastillas-api/internal/application/analytics"
	"github.com/jhoicas/canastillas-api/internal/application/dto"
	"github.com/jhoicas/canastillas-api/pkg/logger"
)

// DashboardHandler maneja el endpoint de métricas del dashboard.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetMetrics devuelve las métricas del dashboard: tarjetas por estado,
// distribución por ubicación, tendencia mensual y movimientos recientes.
// GET /api/dashboard/metrics
//
// A diferencia de los listados, la respuesta va sin envoltura {"data": ...};
// el frontend consume los campos en la raíz.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.GetMetrics(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error al obtener métricas del dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(metrics)
}
