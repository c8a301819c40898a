package usecase

import (
	"context"

	"github.com/jhoicas/canastillas-api/internal/application/dto"
	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

// CanastillaUseCase CRUD de canastillas. La mutación implícita de estado por
// movimientos vive en el paquete tracking; aquí solo la edición directa.
type CanastillaUseCase struct {
	txRunner AdminTxRunner
	repo     repository.CanastillaRepository
}

// NewCanastillaUseCase construye el caso de uso.
func NewCanastillaUseCase(txRunner AdminTxRunner, repo repository.CanastillaRepository) *CanastillaUseCase {
	return &CanastillaUseCase{txRunner: txRunner, repo: repo}
}

// Crear registra una canastilla nueva con fecha_ultimo_movimiento = now().
// Devuelve domain.ErrDuplicate si el ID ya existe.
func (uc *CanastillaUseCase) Crear(ctx context.Context, id string, estado entity.EstadoCanastilla, ubicacion string) error {
	return uc.repo.Crear(ctx, &entity.Canastilla{ID: id, Estado: estado, Ubicacion: ubicacion})
}

// Obtener lectura individual; nil si no existe.
func (uc *CanastillaUseCase) Obtener(ctx context.Context, id string) (*dto.CanastillaResponse, error) {
	c, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := dto.CanastillaADetalle(*c)
	return &out, nil
}

// Listar inventario completo ordenado por ID.
func (uc *CanastillaUseCase) Listar(ctx context.Context) ([]dto.CanastillaResponse, error) {
	detalles, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CanastillaResponse, 0, len(detalles))
	for _, c := range detalles {
		out = append(out, dto.CanastillaAListado(c))
	}
	return out, nil
}

// Actualizar sobreescribe estado y ubicación (edición directa, sin movimiento).
func (uc *CanastillaUseCase) Actualizar(ctx context.Context, id string, estado entity.EstadoCanastilla, ubicacion string) error {
	return uc.repo.Actualizar(ctx, id, estado, ubicacion)
}

// Eliminar borra la canastilla si ningún movimiento la referencia. El conteo y
// el borrado corren en la misma transacción.
func (uc *CanastillaUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.txRunner.RunAdmin(ctx, func(
		movRepo repository.MovimientoRepository,
		canRepo repository.CanastillaRepository,
		_ repository.UsuarioRepository,
	) error {
		existe, err := canRepo.Existe(ctx, id)
		if err != nil {
			return err
		}
		if !existe {
			return domain.ErrCanastillaNotFound
		}
		n, err := movRepo.ContarPorCanastilla(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrCanastillaConMovimientos
		}
		return canRepo.Eliminar(ctx, id)
	})
}
