package entity

import (
	"time"

	"github.com/jhoicas/canastillas-api/internal/domain"
)

// Estados válidos de una canastilla. El estado y la ubicación siempre reflejan
// el último movimiento aplicado (ver DerivarEstado en movimiento.go).
type EstadoCanastilla string

const (
	EstadoDisponible   EstadoCanastilla = "Disponible"
	EstadoEnTransito   EstadoCanastilla = "En Tránsito"
	EstadoEnReparacion EstadoCanastilla = "En Reparación"
)

// ParseEstadoCanastilla valida un estado recibido del exterior. Los valores no
// reconocidos se rechazan en la frontera HTTP, no al llegar a la base de datos.
func ParseEstadoCanastilla(s string) (EstadoCanastilla, error) {
	switch EstadoCanastilla(s) {
	case EstadoDisponible, EstadoEnTransito, EstadoEnReparacion:
		return EstadoCanastilla(s), nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// Canastilla representa una canastilla retornable rastreada por el sistema.
// El ID lo asigna quien la registra (código físico impreso en la canastilla).
type Canastilla struct {
	ID                    string
	Estado                EstadoCanastilla
	Ubicacion             string
	UsuarioAsignadoID     *int64 // opcional, referencia a Usuario
	FechaUltimoMovimiento time.Time
}
