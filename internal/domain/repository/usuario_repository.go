package repository

import (
	"context"

	"github.com/jhoicas/canastillas-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	// Crear inserta el usuario (fecha_creacion = now()) y asigna u.ID.
	// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
	Crear(ctx context.Context, u *entity.Usuario) error
	ObtenerPorID(ctx context.Context, id int64) (*entity.Usuario, error)
	// Listar devuelve todos los usuarios ordenados por nombre.
	Listar(ctx context.Context) ([]*entity.Usuario, error)
	// Actualizar sobreescribe nombre, email, rol y estado; el hash de password
	// solo cuando conPassword es true. El constraint único de email excluye al
	// propio usuario por construcción (misma fila).
	Actualizar(ctx context.Context, u *entity.Usuario, conPassword bool) error
	// Eliminar devuelve domain.ErrUsuarioNotFound si la fila no existe.
	Eliminar(ctx context.Context, id int64) error
}
