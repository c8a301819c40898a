package dto

import "github.com/jhoicas/canastillas-api/internal/domain/repository"

// MovimientoRequest cuerpo de POST /api/movimiento/add y PUT /api/movimiento/:id
// (reemplazo de todos los campos). Todos los campos son obligatorios en la
// frontera HTTP; un cero o vacío responde 400.
type MovimientoRequest struct {
	IDCanastilla         string `json:"id_canastilla"`
	TipoMovimiento       string `json:"tipo_movimiento"`
	UbicacionOrigen      string `json:"ubicacion_origen"`
	UbicacionDestino     string `json:"ubicacion_destino"`
	IDUsuarioResponsable int64  `json:"id_usuario_responsable"`
}

// MovimientoResponse un movimiento en listados y en el widget de recientes.
type MovimientoResponse struct {
	IDMovimiento       int64   `json:"id_movimiento"`
	IDCanastilla       string  `json:"id_canastilla"`
	TipoMovimiento     string  `json:"tipo_movimiento"`
	UbicacionOrigen    string  `json:"ubicacion_origen"`
	UbicacionDestino   string  `json:"ubicacion_destino"`
	UsuarioResponsable *string `json:"usuario_responsable"`
	FechaMovimiento    string  `json:"fecha_movimiento"`
}

// MovimientoDetalleResponse lectura individual: incluye además el ID del
// usuario responsable para que el formulario de edición pueda precargarlo.
type MovimientoDetalleResponse struct {
	IDMovimiento         int64   `json:"id_movimiento"`
	IDCanastilla         string  `json:"id_canastilla"`
	TipoMovimiento       string  `json:"tipo_movimiento"`
	UbicacionOrigen      string  `json:"ubicacion_origen"`
	UbicacionDestino     string  `json:"ubicacion_destino"`
	IDUsuarioResponsable *int64  `json:"id_usuario_responsable"`
	UsuarioResponsable   *string `json:"usuario_responsable"`
	FechaMovimiento      string  `json:"fecha_movimiento"`
}

// MovimientoAListado mapea el detalle de lectura al item de listado.
func MovimientoAListado(m repository.MovimientoDetalle) MovimientoResponse {
	return MovimientoResponse{
		IDMovimiento:       m.ID,
		IDCanastilla:       m.CanastillaID,
		TipoMovimiento:     string(m.Tipo),
		UbicacionOrigen:    m.UbicacionOrigen,
		UbicacionDestino:   m.UbicacionDestino,
		UsuarioResponsable: m.UsuarioResponsable,
		FechaMovimiento:    FormatFechaHora(m.Fecha),
	}
}

// MovimientoADetalle mapea el detalle de lectura a la respuesta individual.
func MovimientoADetalle(m repository.MovimientoDetalle) MovimientoDetalleResponse {
	return MovimientoDetalleResponse{
		IDMovimiento:         m.ID,
		IDCanastilla:         m.CanastillaID,
		TipoMovimiento:       string(m.Tipo),
		UbicacionOrigen:      m.UbicacionOrigen,
		UbicacionDestino:     m.UbicacionDestino,
		IDUsuarioResponsable: m.UsuarioResponsableID,
		UsuarioResponsable:   m.UsuarioResponsable,
		FechaMovimiento:      FormatFechaHora(m.Fecha),
	}
}
