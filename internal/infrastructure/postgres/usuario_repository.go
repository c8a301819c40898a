package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL
// (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Crear inserta el usuario y asigna el ID generado.
func (r *UsuarioRepo) Crear(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, email, password_hash, rol, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id_usuario, fecha_creacion`
	err := r.q.QueryRow(ctx, query, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.Estado).
		Scan(&u.ID, &u.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) ObtenerPorID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre, email, password_hash, rol, estado, fecha_creacion, ultimo_acceso
		FROM usuarios
		WHERE id_usuario = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Estado, &u.FechaCreacion, &u.UltimoAcceso,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Listar devuelve todos los usuarios ordenados por nombre.
func (r *UsuarioRepo) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre, email, password_hash, rol, estado, fecha_creacion, ultimo_acceso
		FROM usuarios
		ORDER BY nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Estado, &u.FechaCreacion, &u.UltimoAcceso); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Actualizar sobreescribe los datos del usuario; el hash de password solo
// cuando conPassword es true.
func (r *UsuarioRepo) Actualizar(ctx context.Context, u *entity.Usuario, conPassword bool) error {
	var (
		tag pgconn.CommandTag
		err error
	)
	if conPassword {
		query := `
			UPDATE usuarios
			SET nombre = $2, email = $3, password_hash = $4, rol = $5, estado = $6
			WHERE id_usuario = $1`
		tag, err = r.q.Exec(ctx, query, u.ID, u.Nombre, u.Email, u.PasswordHash, u.Rol, u.Estado)
	} else {
		query := `
			UPDATE usuarios
			SET nombre = $2, email = $3, rol = $4, estado = $5
			WHERE id_usuario = $1`
		tag, err = r.q.Exec(ctx, query, u.ID, u.Nombre, u.Email, u.Rol, u.Estado)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}

// Eliminar borra la fila por ID.
func (r *UsuarioRepo) Eliminar(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}
