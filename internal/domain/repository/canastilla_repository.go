package repository

import (
	"context"

	"github.com/jhoicas/canastillas-api/internal/domain/entity"
)

// CanastillaDetalle es la vista de lectura de una canastilla con el nombre del
// usuario asignado resuelto (nulo si no hay asignación o el usuario ya no existe).
type CanastillaDetalle struct {
	entity.Canastilla
	UsuarioAsignado *string
}

// CanastillaRepository define el puerto de persistencia para Canastilla.
type CanastillaRepository interface {
	// Crear inserta la canastilla con fecha_ultimo_movimiento = now().
	// Devuelve domain.ErrDuplicate si el ID ya existe.
	Crear(ctx context.Context, c *entity.Canastilla) error
	ObtenerPorID(ctx context.Context, id string) (*CanastillaDetalle, error)
	// Listar devuelve todas las canastillas ordenadas por ID.
	Listar(ctx context.Context) ([]CanastillaDetalle, error)
	// Actualizar sobreescribe estado y ubicación y refresca fecha_ultimo_movimiento.
	// Devuelve domain.ErrCanastillaNotFound si no existe.
	Actualizar(ctx context.Context, id string, estado entity.EstadoCanastilla, ubicacion string) error
	// AplicarDerivacion escribe el estado/ubicación derivados de un movimiento
	// y pone fecha_ultimo_movimiento = now(). Uso exclusivo del motor de estado.
	AplicarDerivacion(ctx context.Context, id string, ubicacion string, estado entity.EstadoCanastilla) error
	Existe(ctx context.Context, id string) (bool, error)
	// Eliminar borra la fila. El chequeo de movimientos dependientes es del caso de uso.
	Eliminar(ctx context.Context, id string) error
}
