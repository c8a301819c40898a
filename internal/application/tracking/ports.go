package tracking

import (
	"context"

	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la inserción del movimiento y la
// derivación de estado de la canastilla se confirmen o reviertan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		canRepo repository.CanastillaRepository,
	) error) error
}
