package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas de solo lectura para el dashboard.
type MetricsRepo struct {
	q Querier
}

// NewMetricsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

// ContarCanastillas obtiene en una sola consulta el total y los conteos por estado.
func (r *MetricsRepo) ContarCanastillas(ctx context.Context) (repository.ConteoEstados, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE estado = 'Disponible'),
		       COUNT(*) FILTER (WHERE estado = 'En Tránsito'),
		       COUNT(*) FILTER (WHERE estado = 'En Reparación')
		FROM canastillas`
	var c repository.ConteoEstados
	err := r.q.QueryRow(ctx, query).Scan(&c.Total, &c.Disponibles, &c.EnTransito, &c.EnReparacion)
	if err != nil {
		return repository.ConteoEstados{}, fmt.Errorf("count canastillas: %w", err)
	}
	return c, nil
}

// DistribucionPorUbicacion agrupa canastillas por ubicación, de mayor a menor.
func (r *MetricsRepo) DistribucionPorUbicacion(ctx context.Context) ([]repository.UbicacionConteo, error) {
	query := `
		SELECT ubicacion, COUNT(*) AS cantidad
		FROM canastillas
		GROUP BY ubicacion
		ORDER BY cantidad DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distribucion por ubicacion: %w", err)
	}
	defer rows.Close()
	var list []repository.UbicacionConteo
	for rows.Next() {
		var u repository.UbicacionConteo
		if err := rows.Scan(&u.Ubicacion, &u.Cantidad); err != nil {
			return nil, fmt.Errorf("scan ubicacion: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// TendenciaMensual cuenta movimientos por mes calendario desde la fecha dada.
func (r *MetricsRepo) TendenciaMensual(ctx context.Context, desde time.Time) ([]repository.MesConteo, error) {
	query := `
		SELECT to_char(fecha_movimiento, 'YYYY-MM') AS mes, COUNT(*)
		FROM movimientos
		WHERE fecha_movimiento >= $1
		GROUP BY mes
		ORDER BY mes`
	rows, err := r.q.Query(ctx, query, desde)
	if err != nil {
		return nil, fmt.Errorf("tendencia mensual: %w", err)
	}
	defer rows.Close()
	var list []repository.MesConteo
	for rows.Next() {
		var m repository.MesConteo
		if err := rows.Scan(&m.Mes, &m.Movimientos); err != nil {
			return nil, fmt.Errorf("scan mes: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// MovimientosRecientes devuelve los últimos movimientos con responsable resuelto.
func (r *MetricsRepo) MovimientosRecientes(ctx context.Context, limite int) ([]repository.MovimientoDetalle, error) {
	query := `
		SELECT m.id_movimiento, m.id_canastilla, m.tipo_movimiento, m.ubicacion_origen,
		       m.ubicacion_destino, m.id_usuario_responsable, u.nombre AS usuario_responsable,
		       m.fecha_movimiento
		FROM movimientos m
		LEFT JOIN usuarios u ON m.id_usuario_responsable = u.id_usuario
		ORDER BY m.fecha_movimiento DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limite)
	if err != nil {
		return nil, fmt.Errorf("movimientos recientes: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}
