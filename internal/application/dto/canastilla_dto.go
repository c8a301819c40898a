package dto

import "github.com/jhoicas/canastillas-api/internal/domain/repository"

// CrearCanastillaRequest cuerpo de POST /api/canastilla/add.
type CrearCanastillaRequest struct {
	IDCanastilla string `json:"id_canastilla"`
	Estado       string `json:"estado"`
	Ubicacion    string `json:"ubicacion"`
}

// ActualizarCanastillaRequest cuerpo de PUT /api/canastilla/:id.
type ActualizarCanastillaRequest struct {
	Estado    string `json:"estado"`
	Ubicacion string `json:"ubicacion"`
}

// CanastillaResponse una canastilla del inventario. En el listado la fecha se
// renderiza como día (YYYY-MM-DD); en la lectura individual con hora.
type CanastillaResponse struct {
	IDCanastilla          string  `json:"id_canastilla"`
	Estado                string  `json:"estado"`
	Ubicacion             string  `json:"ubicacion"`
	UsuarioAsignado       *string `json:"usuario_asignado"`
	FechaUltimoMovimiento string  `json:"fecha_ultimo_movimiento"`
}

// CanastillaAListado mapea el detalle de lectura al item del listado de inventario.
func CanastillaAListado(c repository.CanastillaDetalle) CanastillaResponse {
	return CanastillaResponse{
		IDCanastilla:          c.ID,
		Estado:                string(c.Estado),
		Ubicacion:             c.Ubicacion,
		UsuarioAsignado:       c.UsuarioAsignado,
		FechaUltimoMovimiento: FormatFecha(c.FechaUltimoMovimiento),
	}
}

// CanastillaADetalle mapea el detalle de lectura a la respuesta individual.
func CanastillaADetalle(c repository.CanastillaDetalle) CanastillaResponse {
	out := CanastillaAListado(c)
	out.FechaUltimoMovimiento = FormatFechaHora(c.FechaUltimoMovimiento)
	return out
}
