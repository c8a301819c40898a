package dto

// DashboardMetricsDTO respuesta de GET /api/dashboard/metrics.
// Los nombres de campo son contrato con el frontend del dashboard.
type DashboardMetricsDTO struct {
	Total           int64 `json:"total"`
	Disponibles     int64 `json:"disponibles"`
	EnMovimiento    int64 `json:"en_movimiento"`
	EnMantenimiento int64 `json:"en_mantenimiento"`

	// Distribución de canastillas por ubicación, ordenada por cantidad
	// descendente. labels y data son arreglos paralelos (mismo índice, misma barra).
	GraficoBarras GraficoDTO `json:"grafico_barras"`

	// Movimientos por mes calendario de los últimos 180 días, orden cronológico.
	GraficoTendencia GraficoDTO `json:"grafico_tendencia"`

	// Últimos 5 movimientos por fecha descendente.
	MovimientosRecientes []MovimientoResponse `json:"movimientos_recientes"`
}

// GraficoDTO series para un gráfico de barras o de línea del dashboard.
type GraficoDTO struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}
