package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/canastillas-api/internal/application/analytics"
	"github.com/jhoicas/canastillas-api/internal/application/tracking"
	"github.com/jhoicas/canastillas-api/internal/application/usecase"
	"github.com/jhoicas/canastillas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CanastillaUC *usecase.CanastillaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	MovimientoUC *tracking.MovimientoUseCase
	DashboardUC  *analytics.DashboardUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API. Las rutas son contrato con el frontend
// existente: singular /api/canastilla y /api/movimiento para operaciones por
// ID, plural solo en los listados, y /api/inventario como listado de canastillas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	api.Get("/dashboard/metrics", dashboardHandler.GetMetrics)

	// Canastillas
	canastillaHandler := NewCanastillaHandler(deps.CanastillaUC, deps.Log)
	api.Get("/inventario", canastillaHandler.List)
	api.Post("/canastilla/add", canastillaHandler.Create)
	api.Get("/canastilla/:id", canastillaHandler.GetByID)
	api.Put("/canastilla/:id", canastillaHandler.Update)
	api.Delete("/canastilla/:id", canastillaHandler.Delete)

	// Movimientos
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC, deps.Log)
	api.Get("/movimientos", movimientoHandler.List)
	api.Post("/movimiento/add", movimientoHandler.Create)
	api.Get("/movimiento/:id", movimientoHandler.GetByID)
	api.Put("/movimiento/:id", movimientoHandler.Update)
	api.Delete("/movimiento/:id", movimientoHandler.Delete)

	// Usuarios
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.Log)
	api.Get("/usuarios", usuarioHandler.List)
	api.Post("/usuario/add", usuarioHandler.Create)
	api.Get("/usuario/:id", usuarioHandler.GetByID)
	api.Put("/usuario/:id", usuarioHandler.Update)
	api.Delete("/usuario/:id", usuarioHandler.Delete)
}
