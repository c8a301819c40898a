package repository

import (
	"context"

	"github.com/jhoicas/canastillas-api/internal/domain/entity"
)

// MovimientoDetalle es la vista de lectura de un movimiento con el nombre del
// usuario responsable resuelto vía LEFT JOIN (nulo si no hay usuario).
type MovimientoDetalle struct {
	entity.Movimiento
	UsuarioResponsable *string
}

// MovimientoRepository define el puerto de persistencia para la bitácora de movimientos.
type MovimientoRepository interface {
	// Crear inserta el movimiento (fecha = now() si está en cero) y asigna m.ID.
	Crear(ctx context.Context, m *entity.Movimiento) error
	ObtenerPorID(ctx context.Context, id int64) (*MovimientoDetalle, error)
	// Listar devuelve todos los movimientos ordenados por fecha descendente.
	Listar(ctx context.Context) ([]MovimientoDetalle, error)
	// Actualizar reemplaza todos los campos editables; no toca la fecha.
	Actualizar(ctx context.Context, m *entity.Movimiento) error
	// Eliminar devuelve domain.ErrMovimientoNotFound si la fila no existe.
	Eliminar(ctx context.Context, id int64) error
	ContarPorCanastilla(ctx context.Context, canastillaID string) (int64, error)
	ContarPorResponsable(ctx context.Context, usuarioID int64) (int64, error)
}
