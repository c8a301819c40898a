// Package analytics contiene el caso de uso del dashboard de métricas de
// canastillas: conteos por estado, distribución por ubicación, tendencia
// mensual y movimientos recientes.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/canastillas-api/internal/application/dto"
	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

const (
	movimientosRecientes = 5   // tamaño del widget de recientes
	diasTendencia        = 180 // ventana de la tendencia mensual
)

// DashboardUseCase arma la respuesta de GET /api/dashboard/metrics.
//
// Fuente de datos: MetricsRepository (consultas read-only). Las cuatro
// consultas son independientes y corren en paralelo sobre el pool.
type DashboardUseCase struct {
	metricsRepo repository.MetricsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(metricsRepo repository.MetricsRepository) *DashboardUseCase {
	return &DashboardUseCase{metricsRepo: metricsRepo}
}

// GetMetrics construye el DashboardMetricsDTO.
//
// Cuatro llamadas en paralelo:
//  1. ContarCanastillas            → tarjetas total/disponibles/en_movimiento/en_mantenimiento
//  2. DistribucionPorUbicacion     → grafico_barras (labels/data paralelos, cantidad DESC)
//  3. TendenciaMensual(180 días)   → grafico_tendencia (meses ascendentes)
//  4. MovimientosRecientes(5)      → movimientos_recientes
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	desde := time.Now().AddDate(0, 0, -diasTendencia)

	type conteosResult struct {
		conteos repository.ConteoEstados
		err     error
	}
	type barrasResult struct {
		filas []repository.UbicacionConteo
		err   error
	}
	type tendenciaResult struct {
		filas []repository.MesConteo
		err   error
	}
	type recientesResult struct {
		filas []repository.MovimientoDetalle
		err   error
	}

	conteosCh := make(chan conteosResult, 1)
	barrasCh := make(chan barrasResult, 1)
	tendenciaCh := make(chan tendenciaResult, 1)
	recientesCh := make(chan recientesResult, 1)

	go func() {
		c, err := uc.metricsRepo.ContarCanastillas(ctx)
		conteosCh <- conteosResult{c, err}
	}()
	go func() {
		filas, err := uc.metricsRepo.DistribucionPorUbicacion(ctx)
		barrasCh <- barrasResult{filas, err}
	}()
	go func() {
		filas, err := uc.metricsRepo.TendenciaMensual(ctx, desde)
		tendenciaCh <- tendenciaResult{filas, err}
	}()
	go func() {
		filas, err := uc.metricsRepo.MovimientosRecientes(ctx, movimientosRecientes)
		recientesCh <- recientesResult{filas, err}
	}()

	conteos := <-conteosCh
	barras := <-barrasCh
	tendencia := <-tendenciaCh
	recientes := <-recientesCh

	if conteos.err != nil {
		return nil, fmt.Errorf("dashboard: conteos por estado: %w", conteos.err)
	}
	if barras.err != nil {
		return nil, fmt.Errorf("dashboard: distribución por ubicación: %w", barras.err)
	}
	if tendencia.err != nil {
		return nil, fmt.Errorf("dashboard: tendencia mensual: %w", tendencia.err)
	}
	if recientes.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recientes.err)
	}

	graficoBarras := dto.GraficoDTO{Labels: []string{}, Data: []int64{}}
	for _, fila := range barras.filas {
		graficoBarras.Labels = append(graficoBarras.Labels, fila.Ubicacion)
		graficoBarras.Data = append(graficoBarras.Data, fila.Cantidad)
	}

	graficoTendencia := dto.GraficoDTO{Labels: []string{}, Data: []int64{}}
	for _, fila := range tendencia.filas {
		graficoTendencia.Labels = append(graficoTendencia.Labels, fila.Mes)
		graficoTendencia.Data = append(graficoTendencia.Data, fila.Movimientos)
	}

	movs := make([]dto.MovimientoResponse, 0, len(recientes.filas))
	for _, m := range recientes.filas {
		movs = append(movs, dto.MovimientoAListado(m))
	}

	return &dto.DashboardMetricsDTO{
		Total:                conteos.conteos.Total,
		Disponibles:          conteos.conteos.Disponibles,
		EnMovimiento:         conteos.conteos.EnTransito,
		EnMantenimiento:      conteos.conteos.EnReparacion,
		GraficoBarras:        graficoBarras,
		GraficoTendencia:     graficoTendencia,
		MovimientosRecientes: movs,
	}, nil
}
