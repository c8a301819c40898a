package entity

import (
	"time"

	"github.com/jhoicas/canastillas-api/internal/domain"
)

// Tipos de movimiento de canastillas.
type TipoMovimiento string

const (
	TipoEntrada TipoMovimiento = "entrada" // llegada a una ubicación de reposo
	TipoSalida  TipoMovimiento = "salida"  // despacho, la canastilla queda en tránsito
)

// Ubicaciones con significado especial para la regla de derivación.
const (
	UbicacionTaller     = "Taller"      // destino que marca la canastilla en reparación
	UbicacionEnTransito = "En Tránsito" // pseudo-ubicación mientras está despachada
)

// ParseTipoMovimiento valida el tipo recibido del exterior.
func ParseTipoMovimiento(s string) (TipoMovimiento, error) {
	switch TipoMovimiento(s) {
	case TipoEntrada, TipoSalida:
		return TipoMovimiento(s), nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// Movimiento representa un evento de traslado registrado en la bitácora.
// Es el origen de verdad del estado de la canastilla que referencia.
type Movimiento struct {
	ID                   int64
	CanastillaID         string
	Tipo                 TipoMovimiento
	UbicacionOrigen      string
	UbicacionDestino     string
	UsuarioResponsableID *int64 // referencia blanda: se guarda tal cual, LEFT JOIN en lecturas
	Fecha                time.Time
}

// DerivarEstado aplica la regla de derivación: el movimiento determina la
// ubicación y el estado actual de la canastilla que referencia.
//
//   - entrada: la canastilla queda en la ubicación destino; si el destino es el
//     Taller pasa a "En Reparación", en otro caso a "Disponible".
//   - salida: la canastilla queda "En Tránsito" (el destino declarado se ignora
//     hasta que un movimiento de entrada la reciba).
//
// El switch es exhaustivo sobre los tipos cerrados; un tipo desconocido solo
// puede llegar aquí si se saltó ParseTipoMovimiento en la frontera.
func DerivarEstado(tipo TipoMovimiento, destino string) (ubicacion string, estado EstadoCanastilla, err error) {
	switch tipo {
	case TipoEntrada:
		if destino == UbicacionTaller {
			return UbicacionTaller, EstadoEnReparacion, nil
		}
		return destino, EstadoDisponible, nil
	case TipoSalida:
		return UbicacionEnTransito, EstadoEnTransito, nil
	default:
		return "", "", domain.ErrInvalidInput
	}
}
