package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canastillas-api/internal/application/apptest"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
)

func sembrarEscenario(store *apptest.Store) (usuarioID int64) {
	usuarioID = store.SembrarUsuario(entity.Usuario{Nombre: "Carlos Ruiz", Email: "carlos@acme.co", Rol: "operador", Estado: "activo"})
	store.SembrarCanastilla(entity.Canastilla{ID: "CAN-001", Estado: entity.EstadoDisponible, Ubicacion: "Bodega Central"})
	return usuarioID
}

func TestMovimiento_RegistrarDerivaEstado(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := sembrarEscenario(store)
	app := newTestApp(store)

	// salida: la canastilla queda en tránsito sin importar el destino declarado
	resp := doJSON(t, app, http.MethodPost, "/api/movimiento/add", map[string]any{
		"id_canastilla":          "CAN-001",
		"tipo_movimiento":        "salida",
		"ubicacion_origen":       "Bodega Central",
		"ubicacion_destino":      "Cliente Norte",
		"id_usuario_responsable": usuarioID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Movimiento registrado con éxito para la canastilla CAN-001", decodeBody(t, resp)["message"])

	c := store.Canastillas["CAN-001"]
	assert.Equal(t, entity.EstadoEnTransito, c.Estado)
	assert.Equal(t, "En Tránsito", c.Ubicacion)

	// entrada al Taller: queda en reparación
	resp = doJSON(t, app, http.MethodPost, "/api/movimiento/add", map[string]any{
		"id_canastilla":          "CAN-001",
		"tipo_movimiento":        "entrada",
		"ubicacion_origen":       "Cliente Norte",
		"ubicacion_destino":      "Taller",
		"id_usuario_responsable": usuarioID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	c = store.Canastillas["CAN-001"]
	assert.Equal(t, entity.EstadoEnReparacion, c.Estado)
	assert.Equal(t, "Taller", c.Ubicacion)
}

func TestMovimiento_RegistrarCanastillaDesconocida(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := sembrarEscenario(store)
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/movimiento/add", map[string]any{
		"id_canastilla":          "NO-EXISTE",
		"tipo_movimiento":        "entrada",
		"ubicacion_origen":       "Taller",
		"ubicacion_destino":      "Bodega Central",
		"id_usuario_responsable": usuarioID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No existe una canastilla con este ID", decodeBody(t, resp)["error"])
	assert.Empty(t, store.Movimientos, "no debe quedar movimiento registrado")
}

func TestMovimiento_RegistrarResponsableEnCero(t *testing.T) {
	store := apptest.NewStore()
	sembrarEscenario(store)
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/movimiento/add", map[string]any{
		"id_canastilla":     "CAN-001",
		"tipo_movimiento":   "entrada",
		"ubicacion_origen":  "Taller",
		"ubicacion_destino": "Bodega Central",
		// id_usuario_responsable ausente (cero cuenta como faltante)
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Datos incompletos", decodeBody(t, resp)["error"])
}

func TestMovimiento_RegistrarTipoDesconocido(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := sembrarEscenario(store)
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodPost, "/api/movimiento/add", map[string]any{
		"id_canastilla":          "CAN-001",
		"tipo_movimiento":        "traslado",
		"ubicacion_origen":       "Bodega Central",
		"ubicacion_destino":      "Bodega Norte",
		"id_usuario_responsable": usuarioID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Tipo de movimiento inválido", decodeBody(t, resp)["error"])
}

func TestMovimiento_IDNoNumerico(t *testing.T) {
	app := newTestApp(apptest.NewStore())

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp := doJSON(t, app, method, "/api/movimiento/abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID de movimiento inválido", decodeBody(t, resp)["error"])
	}
}

// El listado omite id_usuario_responsable; la lectura individual lo incluye
// para precargar el formulario de edición.
func TestMovimiento_ListadoYDetalle(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := sembrarEscenario(store)
	movID := store.SembrarMovimiento(entity.Movimiento{
		CanastillaID:         "CAN-001",
		Tipo:                 entity.TipoEntrada,
		UbicacionOrigen:      "Taller",
		UbicacionDestino:     "Bodega Central",
		UsuarioResponsableID: &usuarioID,
		Fecha:                time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
	})
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodGet, "/api/movimientos", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := dataSlice(t, decodeBody(t, resp))
	require.Len(t, data, 1)
	item := data[0].(map[string]any)
	assert.Equal(t, "Carlos Ruiz", item["usuario_responsable"])
	assert.Equal(t, "2026-05-02 14:00:00", item["fecha_movimiento"])
	assert.NotContains(t, item, "id_usuario_responsable")

	resp = doJSON(t, app, http.MethodGet, "/api/movimiento/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	detalle := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, float64(movID), detalle["id_movimiento"])
	assert.Equal(t, float64(usuarioID), detalle["id_usuario_responsable"])
}

func TestMovimiento_ListadoFechaDescendente(t *testing.T) {
	store := apptest.NewStore()
	sembrarEscenario(store)
	store.SembrarMovimiento(entity.Movimiento{CanastillaID: "CAN-001", Tipo: entity.TipoEntrada, UbicacionOrigen: "a", UbicacionDestino: "b", Fecha: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	store.SembrarMovimiento(entity.Movimiento{CanastillaID: "CAN-001", Tipo: entity.TipoSalida, UbicacionOrigen: "b", UbicacionDestino: "c", Fecha: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)})
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodGet, "/api/movimientos", nil)
	data := dataSlice(t, decodeBody(t, resp))
	require.Len(t, data, 2)
	assert.Equal(t, "2026-06-01 00:00:00", data[0].(map[string]any)["fecha_movimiento"])
	assert.Equal(t, "2026-01-01 00:00:00", data[1].(map[string]any)["fecha_movimiento"])
}

func TestMovimiento_ObtenerNoExistente(t *testing.T) {
	app := newTestApp(apptest.NewStore())

	resp := doJSON(t, app, http.MethodGet, "/api/movimiento/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Movimiento no encontrado", decodeBody(t, resp)["error"])
}

func TestMovimiento_ActualizarNoExistente(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := sembrarEscenario(store)
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodPut, "/api/movimiento/99", map[string]any{
		"id_canastilla":          "CAN-001",
		"tipo_movimiento":        "entrada",
		"ubicacion_origen":       "Taller",
		"ubicacion_destino":      "Bodega Central",
		"id_usuario_responsable": usuarioID,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No existe un movimiento con este ID", decodeBody(t, resp)["error"])
}

func TestMovimiento_ActualizarCanastillaDesconocida(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := sembrarEscenario(store)
	movID := store.SembrarMovimiento(entity.Movimiento{CanastillaID: "CAN-001", Tipo: entity.TipoEntrada, UbicacionOrigen: "a", UbicacionDestino: "b"})
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodPut, "/api/movimiento/1", map[string]any{
		"id_canastilla":          "NO-EXISTE",
		"tipo_movimiento":        "entrada",
		"ubicacion_origen":       "Taller",
		"ubicacion_destino":      "Bodega Central",
		"id_usuario_responsable": usuarioID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No existe una canastilla con este ID", decodeBody(t, resp)["error"])
	assert.Equal(t, "CAN-001", store.Movimientos[movID].CanastillaID, "el movimiento no debe cambiar")
}

func TestMovimiento_Actualizar(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := sembrarEscenario(store)
	store.SembrarMovimiento(entity.Movimiento{CanastillaID: "CAN-001", Tipo: entity.TipoEntrada, UbicacionOrigen: "Taller", UbicacionDestino: "Bodega Central"})
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodPut, "/api/movimiento/1", map[string]any{
		"id_canastilla":          "CAN-001",
		"tipo_movimiento":        "salida",
		"ubicacion_origen":       "Bodega Central",
		"ubicacion_destino":      "Cliente Sur",
		"id_usuario_responsable": usuarioID,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Movimiento 1 actualizado con éxito", decodeBody(t, resp)["message"])

	// Cambió el tipo: la derivación se re-aplica
	c := store.Canastillas["CAN-001"]
	assert.Equal(t, entity.EstadoEnTransito, c.Estado)
}

func TestMovimiento_Eliminar(t *testing.T) {
	store := apptest.NewStore()
	sembrarEscenario(store)
	movID := store.SembrarMovimiento(entity.Movimiento{CanastillaID: "CAN-001", Tipo: entity.TipoEntrada, UbicacionOrigen: "a", UbicacionDestino: "b"})
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodDelete, "/api/movimiento/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Movimiento 1 eliminado con éxito", decodeBody(t, resp)["message"])
	assert.NotContains(t, store.Movimientos, movID)
}

func TestMovimiento_EliminarNoExistente(t *testing.T) {
	app := newTestApp(apptest.NewStore())

	resp := doJSON(t, app, http.MethodDelete, "/api/movimiento/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No existe un movimiento con este ID", decodeBody(t, resp)["error"])
}
