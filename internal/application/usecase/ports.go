package usecase

import (
	"context"

	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

// AdminTxRunner ejecuta una función dentro de una transacción con los tres
// repositorios atados a esa tx. Lo usan las eliminaciones que primero cuentan
// movimientos dependientes y luego borran.
type AdminTxRunner interface {
	RunAdmin(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		canRepo repository.CanastillaRepository,
		userRepo repository.UsuarioRepository,
	) error) error
}
