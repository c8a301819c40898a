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

func TestDashboard_Metrics(t *testing.T) {
	store := apptest.NewStore()
	usuarioID := store.SembrarUsuario(entity.Usuario{Nombre: "Carlos Ruiz", Email: "carlos@acme.co", Rol: "operador", Estado: "activo"})
	store.SembrarCanastilla(entity.Canastilla{ID: "CAN-001", Estado: entity.EstadoDisponible, Ubicacion: "Bodega Central"})
	store.SembrarCanastilla(entity.Canastilla{ID: "CAN-002", Estado: entity.EstadoDisponible, Ubicacion: "Bodega Central"})
	store.SembrarCanastilla(entity.Canastilla{ID: "CAN-003", Estado: entity.EstadoEnTransito, Ubicacion: "En Tránsito"})
	store.SembrarCanastilla(entity.Canastilla{ID: "CAN-004", Estado: entity.EstadoEnReparacion, Ubicacion: "Taller"})
	for i := 0; i < 7; i++ {
		store.SembrarMovimiento(entity.Movimiento{
			CanastillaID:         "CAN-001",
			Tipo:                 entity.TipoEntrada,
			UbicacionOrigen:      "Taller",
			UbicacionDestino:     "Bodega Central",
			UsuarioResponsableID: &usuarioID,
			Fecha:                time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	app := newTestApp(store)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, float64(4), body["total"])
	assert.Equal(t, float64(2), body["disponibles"])
	assert.Equal(t, float64(1), body["en_movimiento"])
	assert.Equal(t, float64(1), body["en_mantenimiento"])

	barras := body["grafico_barras"].(map[string]any)
	labels := barras["labels"].([]any)
	data := barras["data"].([]any)
	require.Equal(t, len(labels), len(data), "labels y data deben ser paralelos")
	assert.Equal(t, "Bodega Central", labels[0], "la ubicación con más canastillas va primero")
	assert.Equal(t, float64(2), data[0])

	tendencia := body["grafico_tendencia"].(map[string]any)
	assert.NotEmpty(t, tendencia["labels"])

	recientes := body["movimientos_recientes"].([]any)
	assert.Len(t, recientes, 5, "el widget de recientes trae a lo sumo 5")
	primero := recientes[0].(map[string]any)
	assert.Equal(t, "Carlos Ruiz", primero["usuario_responsable"])
	assert.NotContains(t, primero, "id_usuario_responsable")
}

// Sin datos, los gráficos deben salir como arreglos vacíos, no null: el
// frontend itera sobre ellos sin chequear.
func TestDashboard_MetricsSinDatos(t *testing.T) {
	app := newTestApp(apptest.NewStore())

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.Equal(t, float64(0), body["total"])
	barras := body["grafico_barras"].(map[string]any)
	assert.NotNil(t, barras["labels"])
	assert.Empty(t, barras["labels"])
	assert.NotNil(t, body["movimientos_recientes"])
	assert.Empty(t, body["movimientos_recientes"])
}
