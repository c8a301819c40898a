// Package apptest provee implementaciones en memoria de los puertos de
// persistencia para tests de casos de uso y handlers, incluida una simulación
// de transacción con rollback por snapshot.
package apptest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
	"github.com/jhoicas/canastillas-api/internal/domain/repository"
)

// ErrForzado error inyectable para probar rutas de rollback.
var ErrForzado = errors.New("fallo forzado por el test")

// Store estado compartido de los repositorios fake.
type Store struct {
	mu          sync.Mutex
	Canastillas map[string]entity.Canastilla
	Movimientos map[int64]entity.Movimiento
	Usuarios    map[int64]entity.Usuario
	nextMovID   int64
	nextUserID  int64

	// FallarCrearMovimiento hace fallar la siguiente inserción de movimiento,
	// después de que la canastilla ya pasó el chequeo de existencia.
	FallarCrearMovimiento bool
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		Canastillas: make(map[string]entity.Canastilla),
		Movimientos: make(map[int64]entity.Movimiento),
		Usuarios:    make(map[int64]entity.Usuario),
	}
}

// SembrarCanastilla inserta una canastilla directamente (sin pasar por el repo).
func (s *Store) SembrarCanastilla(c entity.Canastilla) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.FechaUltimoMovimiento.IsZero() {
		c.FechaUltimoMovimiento = time.Now()
	}
	s.Canastillas[c.ID] = c
}

// SembrarUsuario inserta un usuario directamente y devuelve su ID.
func (s *Store) SembrarUsuario(u entity.Usuario) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		s.nextUserID++
		u.ID = s.nextUserID
	} else if u.ID > s.nextUserID {
		s.nextUserID = u.ID
	}
	if u.FechaCreacion.IsZero() {
		u.FechaCreacion = time.Now()
	}
	s.Usuarios[u.ID] = u
	return u.ID
}

// SembrarMovimiento inserta un movimiento directamente y devuelve su ID.
func (s *Store) SembrarMovimiento(m entity.Movimiento) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == 0 {
		s.nextMovID++
		m.ID = s.nextMovID
	} else if m.ID > s.nextMovID {
		s.nextMovID = m.ID
	}
	if m.Fecha.IsZero() {
		m.Fecha = time.Now()
	}
	s.Movimientos[m.ID] = m
	return m.ID
}

func (s *Store) nombreUsuario(id *int64) *string {
	if id == nil {
		return nil
	}
	u, ok := s.Usuarios[*id]
	if !ok {
		return nil
	}
	nombre := u.Nombre
	return &nombre
}

// ── Repositorio de canastillas ────────────────────────────────────────────────

// CanastillaRepo fake de repository.CanastillaRepository.
type CanastillaRepo struct{ S *Store }

var _ repository.CanastillaRepository = (*CanastillaRepo)(nil)

func (r *CanastillaRepo) Crear(_ context.Context, c *entity.Canastilla) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Canastillas[c.ID]; ok {
		return domain.ErrDuplicate
	}
	c.FechaUltimoMovimiento = time.Now()
	r.S.Canastillas[c.ID] = *c
	return nil
}

func (r *CanastillaRepo) ObtenerPorID(_ context.Context, id string) (*repository.CanastillaDetalle, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c, ok := r.S.Canastillas[id]
	if !ok {
		return nil, nil
	}
	return &repository.CanastillaDetalle{Canastilla: c, UsuarioAsignado: r.S.nombreUsuario(c.UsuarioAsignadoID)}, nil
}

func (r *CanastillaRepo) Listar(_ context.Context) ([]repository.CanastillaDetalle, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]repository.CanastillaDetalle, 0, len(r.S.Canastillas))
	for _, c := range r.S.Canastillas {
		out = append(out, repository.CanastillaDetalle{Canastilla: c, UsuarioAsignado: r.S.nombreUsuario(c.UsuarioAsignadoID)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CanastillaRepo) Actualizar(_ context.Context, id string, estado entity.EstadoCanastilla, ubicacion string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c, ok := r.S.Canastillas[id]
	if !ok {
		return domain.ErrCanastillaNotFound
	}
	c.Estado = estado
	c.Ubicacion = ubicacion
	c.FechaUltimoMovimiento = time.Now()
	r.S.Canastillas[id] = c
	return nil
}

func (r *CanastillaRepo) AplicarDerivacion(_ context.Context, id string, ubicacion string, estado entity.EstadoCanastilla) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c, ok := r.S.Canastillas[id]
	if !ok {
		return domain.ErrCanastillaNotFound
	}
	c.Ubicacion = ubicacion
	c.Estado = estado
	c.FechaUltimoMovimiento = time.Now()
	r.S.Canastillas[id] = c
	return nil
}

func (r *CanastillaRepo) Existe(_ context.Context, id string) (bool, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	_, ok := r.S.Canastillas[id]
	return ok, nil
}

func (r *CanastillaRepo) Eliminar(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Canastillas[id]; !ok {
		return domain.ErrCanastillaNotFound
	}
	delete(r.S.Canastillas, id)
	return nil
}

// ── Repositorio de movimientos ────────────────────────────────────────────────

// MovimientoRepo fake de repository.MovimientoRepository.
type MovimientoRepo struct{ S *Store }

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

func (r *MovimientoRepo) Crear(_ context.Context, m *entity.Movimiento) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if r.S.FallarCrearMovimiento {
		r.S.FallarCrearMovimiento = false
		return ErrForzado
	}
	r.S.nextMovID++
	m.ID = r.S.nextMovID
	if m.Fecha.IsZero() {
		m.Fecha = time.Now()
	}
	r.S.Movimientos[m.ID] = *m
	return nil
}

func (r *MovimientoRepo) ObtenerPorID(_ context.Context, id int64) (*repository.MovimientoDetalle, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	m, ok := r.S.Movimientos[id]
	if !ok {
		return nil, nil
	}
	return &repository.MovimientoDetalle{Movimiento: m, UsuarioResponsable: r.S.nombreUsuario(m.UsuarioResponsableID)}, nil
}

func (r *MovimientoRepo) Listar(_ context.Context) ([]repository.MovimientoDetalle, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]repository.MovimientoDetalle, 0, len(r.S.Movimientos))
	for _, m := range r.S.Movimientos {
		out = append(out, repository.MovimientoDetalle{Movimiento: m, UsuarioResponsable: r.S.nombreUsuario(m.UsuarioResponsableID)})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.After(out[j].Fecha)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MovimientoRepo) Actualizar(_ context.Context, m *entity.Movimiento) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	actual, ok := r.S.Movimientos[m.ID]
	if !ok {
		return domain.ErrMovimientoNotFound
	}
	m.Fecha = actual.Fecha // la fecha del movimiento no se edita
	r.S.Movimientos[m.ID] = *m
	return nil
}

func (r *MovimientoRepo) Eliminar(_ context.Context, id int64) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Movimientos[id]; !ok {
		return domain.ErrMovimientoNotFound
	}
	delete(r.S.Movimientos, id)
	return nil
}

func (r *MovimientoRepo) ContarPorCanastilla(_ context.Context, canastillaID string) (int64, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var n int64
	for _, m := range r.S.Movimientos {
		if m.CanastillaID == canastillaID {
			n++
		}
	}
	return n, nil
}

func (r *MovimientoRepo) ContarPorResponsable(_ context.Context, usuarioID int64) (int64, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var n int64
	for _, m := range r.S.Movimientos {
		if m.UsuarioResponsableID != nil && *m.UsuarioResponsableID == usuarioID {
			n++
		}
	}
	return n, nil
}

// ── Repositorio de usuarios ───────────────────────────────────────────────────

// UsuarioRepo fake de repository.UsuarioRepository.
type UsuarioRepo struct{ S *Store }

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

func (r *UsuarioRepo) Crear(_ context.Context, u *entity.Usuario) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, existente := range r.S.Usuarios {
		if existente.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.S.nextUserID++
	u.ID = r.S.nextUserID
	u.FechaCreacion = time.Now()
	r.S.Usuarios[u.ID] = *u
	return nil
}

func (r *UsuarioRepo) ObtenerPorID(_ context.Context, id int64) (*entity.Usuario, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	u, ok := r.S.Usuarios[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UsuarioRepo) Listar(_ context.Context) ([]*entity.Usuario, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Usuario, 0, len(r.S.Usuarios))
	for id := range r.S.Usuarios {
		u := r.S.Usuarios[id]
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *UsuarioRepo) Actualizar(_ context.Context, u *entity.Usuario, conPassword bool) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	actual, ok := r.S.Usuarios[u.ID]
	if !ok {
		return domain.ErrUsuarioNotFound
	}
	for id, otro := range r.S.Usuarios {
		if id != u.ID && otro.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	actual.Nombre = u.Nombre
	actual.Email = u.Email
	actual.Rol = u.Rol
	actual.Estado = u.Estado
	if conPassword {
		actual.PasswordHash = u.PasswordHash
	}
	r.S.Usuarios[u.ID] = actual
	return nil
}

func (r *UsuarioRepo) Eliminar(_ context.Context, id int64) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Usuarios[id]; !ok {
		return domain.ErrUsuarioNotFound
	}
	delete(r.S.Usuarios, id)
	return nil
}

// ── Repositorio de métricas ───────────────────────────────────────────────────

// MetricsRepo fake de repository.MetricsRepository, calcula sobre el Store.
type MetricsRepo struct{ S *Store }

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

func (r *MetricsRepo) ContarCanastillas(_ context.Context) (repository.ConteoEstados, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var c repository.ConteoEstados
	for _, can := range r.S.Canastillas {
		c.Total++
		switch can.Estado {
		case entity.EstadoDisponible:
			c.Disponibles++
		case entity.EstadoEnTransito:
			c.EnTransito++
		case entity.EstadoEnReparacion:
			c.EnReparacion++
		}
	}
	return c, nil
}

func (r *MetricsRepo) DistribucionPorUbicacion(_ context.Context) ([]repository.UbicacionConteo, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	porUbicacion := make(map[string]int64)
	for _, c := range r.S.Canastillas {
		porUbicacion[c.Ubicacion]++
	}
	out := make([]repository.UbicacionConteo, 0, len(porUbicacion))
	for u, n := range porUbicacion {
		out = append(out, repository.UbicacionConteo{Ubicacion: u, Cantidad: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cantidad != out[j].Cantidad {
			return out[i].Cantidad > out[j].Cantidad
		}
		return out[i].Ubicacion < out[j].Ubicacion
	})
	return out, nil
}

func (r *MetricsRepo) TendenciaMensual(_ context.Context, desde time.Time) ([]repository.MesConteo, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	porMes := make(map[string]int64)
	for _, m := range r.S.Movimientos {
		if m.Fecha.Before(desde) {
			continue
		}
		porMes[m.Fecha.Format("2006-01")]++
	}
	out := make([]repository.MesConteo, 0, len(porMes))
	for mes, n := range porMes {
		out = append(out, repository.MesConteo{Mes: mes, Movimientos: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mes < out[j].Mes })
	return out, nil
}

func (r *MetricsRepo) MovimientosRecientes(ctx context.Context, limite int) ([]repository.MovimientoDetalle, error) {
	todos, err := (&MovimientoRepo{S: r.S}).Listar(ctx)
	if err != nil {
		return nil, err
	}
	if len(todos) > limite {
		todos = todos[:limite]
	}
	return todos, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// TxRunner fake transaccional: toma un snapshot del Store antes de ejecutar fn
// y lo restaura si fn devuelve error, emulando el rollback de la base de datos.
type TxRunner struct{ S *Store }

// Run implementa tracking.TxRunner.
func (t *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	canRepo repository.CanastillaRepository,
) error) error {
	snap := t.snapshot()
	err := fn(&MovimientoRepo{S: t.S}, &CanastillaRepo{S: t.S})
	if err != nil {
		t.restore(snap)
	}
	return err
}

// RunAdmin implementa usecase.AdminTxRunner.
func (t *TxRunner) RunAdmin(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	canRepo repository.CanastillaRepository,
	userRepo repository.UsuarioRepository,
) error) error {
	snap := t.snapshot()
	err := fn(&MovimientoRepo{S: t.S}, &CanastillaRepo{S: t.S}, &UsuarioRepo{S: t.S})
	if err != nil {
		t.restore(snap)
	}
	return err
}

type snapshot struct {
	canastillas map[string]entity.Canastilla
	movimientos map[int64]entity.Movimiento
	usuarios    map[int64]entity.Usuario
	nextMovID   int64
	nextUserID  int64
}

func (t *TxRunner) snapshot() snapshot {
	t.S.mu.Lock()
	defer t.S.mu.Unlock()
	snap := snapshot{
		canastillas: make(map[string]entity.Canastilla, len(t.S.Canastillas)),
		movimientos: make(map[int64]entity.Movimiento, len(t.S.Movimientos)),
		usuarios:    make(map[int64]entity.Usuario, len(t.S.Usuarios)),
		nextMovID:   t.S.nextMovID,
		nextUserID:  t.S.nextUserID,
	}
	for k, v := range t.S.Canastillas {
		snap.canastillas[k] = v
	}
	for k, v := range t.S.Movimientos {
		snap.movimientos[k] = v
	}
	for k, v := range t.S.Usuarios {
		snap.usuarios[k] = v
	}
	return snap
}

func (t *TxRunner) restore(snap snapshot) {
	t.S.mu.Lock()
	defer t.S.mu.Unlock()
	t.S.Canastillas = snap.canastillas
	t.S.Movimientos = snap.movimientos
	t.S.Usuarios = snap.usuarios
	t.S.nextMovID = snap.nextMovID
	t.S.nextUserID = snap.nextUserID
}
