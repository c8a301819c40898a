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

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre
// PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Crear inserta el movimiento y asigna el ID generado. Si m.Fecha está en
// cero se usa now() del servidor de base de datos.
func (r *MovimientoRepo) Crear(ctx context.Context, m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id_canastilla, tipo_movimiento, ubicacion_origen, ubicacion_destino, id_usuario_responsable, fecha_movimiento)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
		RETURNING id_movimiento, fecha_movimiento`
	var fecha any
	if !m.Fecha.IsZero() {
		fecha = m.Fecha
	}
	err := r.q.QueryRow(ctx, query,
		m.CanastillaID, m.Tipo, m.UbicacionOrigen, m.UbicacionDestino, m.UsuarioResponsableID, fecha,
	).Scan(&m.ID, &m.Fecha)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un movimiento con el nombre del responsable resuelto.
func (r *MovimientoRepo) ObtenerPorID(ctx context.Context, id int64) (*repository.MovimientoDetalle, error) {
	query := `
		SELECT m.id_movimiento, m.id_canastilla, m.tipo_movimiento, m.ubicacion_origen,
		       m.ubicacion_destino, m.id_usuario_responsable, u.nombre AS usuario_responsable,
		       m.fecha_movimiento
		FROM movimientos m
		LEFT JOIN usuarios u ON m.id_usuario_responsable = u.id_usuario
		WHERE m.id_movimiento = $1`
	var d repository.MovimientoDetalle
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CanastillaID, &d.Tipo, &d.UbicacionOrigen,
		&d.UbicacionDestino, &d.UsuarioResponsableID, &d.UsuarioResponsable, &d.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &d, nil
}

// Listar devuelve la bitácora completa, del movimiento más reciente al más antiguo.
func (r *MovimientoRepo) Listar(ctx context.Context) ([]repository.MovimientoDetalle, error) {
	query := `
		SELECT m.id_movimiento, m.id_canastilla, m.tipo_movimiento, m.ubicacion_origen,
		       m.ubicacion_destino, m.id_usuario_responsable, u.nombre AS usuario_responsable,
		       m.fecha_movimiento
		FROM movimientos m
		LEFT JOIN usuarios u ON m.id_usuario_responsable = u.id_usuario
		ORDER BY m.fecha_movimiento DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// Actualizar reemplaza los campos editables del movimiento; la fecha original
// se conserva.
func (r *MovimientoRepo) Actualizar(ctx context.Context, m *entity.Movimiento) error {
	query := `
		UPDATE movimientos
		SET id_canastilla = $2, tipo_movimiento = $3, ubicacion_origen = $4,
		    ubicacion_destino = $5, id_usuario_responsable = $6
		WHERE id_movimiento = $1`
	tag, err := r.q.Exec(ctx, query,
		m.ID, m.CanastillaID, m.Tipo, m.UbicacionOrigen, m.UbicacionDestino, m.UsuarioResponsableID,
	)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovimientoNotFound
	}
	return nil
}

// Eliminar borra la fila por ID.
func (r *MovimientoRepo) Eliminar(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM movimientos WHERE id_movimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMovimientoNotFound
	}
	return nil
}

// ContarPorCanastilla cuenta los movimientos que referencian la canastilla.
func (r *MovimientoRepo) ContarPorCanastilla(ctx context.Context, canastillaID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos WHERE id_canastilla = $1`, canastillaID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimientos por canastilla: %w", err)
	}
	return n, nil
}

// ContarPorResponsable cuenta los movimientos registrados por el usuario.
func (r *MovimientoRepo) ContarPorResponsable(ctx context.Context, usuarioID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos WHERE id_usuario_responsable = $1`, usuarioID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimientos por responsable: %w", err)
	}
	return n, nil
}

func scanMovimientos(rows pgx.Rows) ([]repository.MovimientoDetalle, error) {
	var list []repository.MovimientoDetalle
	for rows.Next() {
		var d repository.MovimientoDetalle
		if err := rows.Scan(
			&d.ID, &d.CanastillaID, &d.Tipo, &d.UbicacionOrigen,
			&d.UbicacionDestino, &d.UsuarioResponsableID, &d.UsuarioResponsable, &d.Fecha,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
