package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
)

// Regla de derivación: entrada a ubicación normal → Disponible en esa ubicación.
func TestDerivarEstado_EntradaUbicacionNormal(t *testing.T) {
	ubicacion, estado, err := entity.DerivarEstado(entity.TipoEntrada, "Bodega A")
	require.NoError(t, err)
	assert.Equal(t, "Bodega A", ubicacion)
	assert.Equal(t, entity.EstadoDisponible, estado)
}

// Entrada al Taller → En Reparación.
func TestDerivarEstado_EntradaTaller(t *testing.T) {
	ubicacion, estado, err := entity.DerivarEstado(entity.TipoEntrada, "Taller")
	require.NoError(t, err)
	assert.Equal(t, entity.UbicacionTaller, ubicacion)
	assert.Equal(t, entity.EstadoEnReparacion, estado)
}

// Salida → En Tránsito sin importar el destino declarado.
func TestDerivarEstado_SalidaIgnoraDestino(t *testing.T) {
	for _, destino := range []string{"", "Cliente Norte", "Taller"} {
		ubicacion, estado, err := entity.DerivarEstado(entity.TipoSalida, destino)
		require.NoError(t, err)
		assert.Equal(t, entity.UbicacionEnTransito, ubicacion,
			"una salida siempre deja la canastilla en tránsito (destino %q)", destino)
		assert.Equal(t, entity.EstadoEnTransito, estado)
	}
}

func TestDerivarEstado_TipoDesconocido(t *testing.T) {
	_, _, err := entity.DerivarEstado(entity.TipoMovimiento("traslado"), "Bodega A")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseTipoMovimiento(t *testing.T) {
	tipo, err := entity.ParseTipoMovimiento("entrada")
	require.NoError(t, err)
	assert.Equal(t, entity.TipoEntrada, tipo)

	_, err = entity.ParseTipoMovimiento("ENTRADA")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "los tipos se validan con mayúsculas exactas")

	_, err = entity.ParseTipoMovimiento("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseEstadoCanastilla(t *testing.T) {
	for _, s := range []string{"Disponible", "En Tránsito", "En Reparación"} {
		estado, err := entity.ParseEstadoCanastilla(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(estado))
	}
	_, err := entity.ParseEstadoCanastilla("Perdida")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
