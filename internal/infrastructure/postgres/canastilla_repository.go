package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

var _ repository.CanastillaRepository = (*CanastillaRepo)(nil)

// CanastillaRepo implementación del puerto CanastillaRepository sobre
// PostgreSQL (usable con pool o tx).
type CanastillaRepo struct {
	q Querier
}

// NewCanastillaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCanastillaRepository(q Querier) *CanastillaRepo {
	return &CanastillaRepo{q: q}
}

// Crear inserta una canastilla nueva con fecha_ultimo_movimiento = now().
func (r *CanastillaRepo) Crear(ctx context.Context, c *entity.Canastilla) error {
	query := `
		INSERT INTO canastillas (id_canastilla, estado, ubicacion, id_usuario_asignado, fecha_ultimo_movimiento)
		VALUES ($1, $2, $3, $4, now())`
	_, err := r.q.Exec(ctx, query, c.ID, c.Estado, c.Ubicacion, c.UsuarioAsignadoID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert canastilla: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una canastilla con el nombre del usuario asignado resuelto.
func (r *CanastillaRepo) ObtenerPorID(ctx context.Context, id string) (*repository.CanastillaDetalle, error) {
	query := `
		SELECT c.id_canastilla, c.estado, c.ubicacion, c.id_usuario_asignado,
		       u.nombre AS usuario_asignado, c.fecha_ultimo_movimiento
		FROM canastillas c
		LEFT JOIN usuarios u ON c.id_usuario_asignado = u.id_usuario
		WHERE c.id_canastilla = $1`
	var d repository.CanastillaDetalle
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Estado, &d.Ubicacion, &d.UsuarioAsignadoID, &d.UsuarioAsignado, &d.FechaUltimoMovimiento,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get canastilla: %w", err)
	}
	return &d, nil
}

// Listar devuelve el inventario completo ordenado por ID.
func (r *CanastillaRepo) Listar(ctx context.Context) ([]repository.CanastillaDetalle, error) {
	query := `
		SELECT c.id_canastilla, c.estado, c.ubicacion, c.id_usuario_asignado,
		       u.nombre AS usuario_asignado, c.fecha_ultimo_movimiento
		FROM canastillas c
		LEFT JOIN usuarios u ON c.id_usuario_asignado = u.id_usuario
		ORDER BY c.id_canastilla`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list canastillas: %w", err)
	}
	defer rows.Close()
	var list []repository.CanastillaDetalle
	for rows.Next() {
		var d repository.CanastillaDetalle
		if err := rows.Scan(&d.ID, &d.Estado, &d.Ubicacion, &d.UsuarioAsignadoID, &d.UsuarioAsignado, &d.FechaUltimoMovimiento); err != nil {
			return nil, fmt.Errorf("scan canastilla: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Actualizar sobreescribe estado y ubicación y refresca la fecha.
func (r *CanastillaRepo) Actualizar(ctx context.Context, id string, estado entity.EstadoCanastilla, ubicacion string) error {
	query := `
		UPDATE canastillas
		SET estado = $2, ubicacion = $3, fecha_ultimo_movimiento = now()
		WHERE id_canastilla = $1`
	tag, err := r.q.Exec(ctx, query, id, estado, ubicacion)
	if err != nil {
		return fmt.Errorf("update canastilla: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCanastillaNotFound
	}
	return nil
}

// AplicarDerivacion escribe el estado derivado del último movimiento.
func (r *CanastillaRepo) AplicarDerivacion(ctx context.Context, id string, ubicacion string, estado entity.EstadoCanastilla) error {
	query := `
		UPDATE canastillas
		SET ubicacion = $2, estado = $3, fecha_ultimo_movimiento = now()
		WHERE id_canastilla = $1`
	tag, err := r.q.Exec(ctx, query, id, ubicacion, estado)
	if err != nil {
		return fmt.Errorf("derivar canastilla: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCanastillaNotFound
	}
	return nil
}

// Existe verifica si el ID está registrado.
func (r *CanastillaRepo) Existe(ctx context.Context, id string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM canastillas WHERE id_canastilla = $1)`, id).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists canastilla: %w", err)
	}
	return existe, nil
}

// Eliminar borra la fila por ID.
func (r *CanastillaRepo) Eliminar(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM canastillas WHERE id_canastilla = $1`, id)
	if err != nil {
		return fmt.Errorf("delete canastilla: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCanastillaNotFound
	}
	return nil
}
