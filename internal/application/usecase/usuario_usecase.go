package usecase

import (
	"context"

	"github.com/jhoicas/canastillas-api/internal/application/dto"
	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
	"github.com/jhoicas/canastillas-api/internal/domain/repository"
	"github.com/jhoicas/canastillas-api/pkg/digest"
)

// UsuarioUseCase CRUD administrativo de usuarios.
type UsuarioUseCase struct {
	txRunner AdminTxRunner
	repo     repository.UsuarioRepository
	digester digest.Digester
}

// NewUsuarioUseCase construye el caso de uso con el digester configurado.
func NewUsuarioUseCase(txRunner AdminTxRunner, repo repository.UsuarioRepository, digester digest.Digester) *UsuarioUseCase {
	return &UsuarioUseCase{txRunner: txRunner, repo: repo, digester: digester}
}

// Crear registra un usuario con la contraseña pasada por el digester.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UsuarioUseCase) Crear(ctx context.Context, in dto.CrearUsuarioRequest) error {
	hash, err := uc.digester.Hash(in.Password)
	if err != nil {
		return err
	}
	u := &entity.Usuario{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: hash,
		Rol:          in.Rol,
		Estado:       in.Estado,
	}
	return uc.repo.Crear(ctx, u)
}

// Obtener lectura individual; nil si no existe.
func (uc *UsuarioUseCase) Obtener(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	out := dto.UsuarioAResponse(u)
	return &out, nil
}

// Listar todos los usuarios ordenados por nombre.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, dto.UsuarioAResponse(u))
	}
	return out, nil
}

// Actualizar reemplaza nombre, email, rol y estado. La contraseña solo se
// re-digiere y sobreescribe cuando viene en la petición; vacía conserva el hash
// actual. El chequeo de email duplicado excluye al propio usuario.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarUsuarioRequest) error {
	u := &entity.Usuario{
		ID:     id,
		Nombre: in.Nombre,
		Email:  in.Email,
		Rol:    in.Rol,
		Estado: in.Estado,
	}
	conPassword := in.Password != ""
	if conPassword {
		hash, err := uc.digester.Hash(in.Password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}
	return uc.repo.Actualizar(ctx, u, conPassword)
}

// Eliminar borra el usuario si ningún movimiento lo referencia como
// responsable. El conteo y el borrado corren en la misma transacción.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.txRunner.RunAdmin(ctx, func(
		movRepo repository.MovimientoRepository,
		_ repository.CanastillaRepository,
		userRepo repository.UsuarioRepository,
	) error {
		u, err := userRepo.ObtenerPorID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrUsuarioNotFound
		}
		n, err := movRepo.ContarPorResponsable(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrUsuarioConMovimientos
		}
		return userRepo.Eliminar(ctx, id)
	})
}
