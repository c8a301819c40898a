package repository

import (
	"context"
	"time"
)

// ConteoEstados totales de canastillas por estado para las tarjetas del dashboard.
type ConteoEstados struct {
	Total        int64
	Disponibles  int64
	EnTransito   int64
	EnReparacion int64
}

// UbicacionConteo una barra del gráfico de distribución por ubicación.
type UbicacionConteo struct {
	Ubicacion string
	Cantidad  int64
}

// MesConteo un punto de la tendencia mensual de movimientos ("YYYY-MM").
type MesConteo struct {
	Mes         string
	Movimientos int64
}

// MetricsRepository consultas de solo lectura que alimentan el dashboard.
type MetricsRepository interface {
	ContarCanastillas(ctx context.Context) (ConteoEstados, error)
	// DistribucionPorUbicacion agrupa canastillas por ubicación, ordenado por
	// cantidad descendente (orden que consume el gráfico de barras).
	DistribucionPorUbicacion(ctx context.Context) ([]UbicacionConteo, error)
	// TendenciaMensual cuenta movimientos por mes calendario desde la fecha dada,
	// en orden cronológico ascendente.
	TendenciaMensual(ctx context.Context, desde time.Time) ([]MesConteo, error)
	// MovimientosRecientes devuelve los últimos movimientos por fecha descendente.
	MovimientosRecientes(ctx context.Context, limite int) ([]MovimientoDetalle, error)
}
