package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/canastillas-api/internal/application/dto"
)

// Los formatos de fecha son contrato byte a byte con el frontend.
func TestFormatosDeFecha(t *testing.T) {
	ts := time.Date(2026, 8, 3, 9, 5, 7, 0, time.UTC)

	assert.Equal(t, "2026-08-03", dto.FormatFecha(ts))
	assert.Equal(t, "2026-08-03 09:05:07", dto.FormatFechaHora(ts))

	s := dto.FormatFechaHoraPtr(&ts)
	assert.Equal(t, "2026-08-03 09:05:07", *s)
	assert.Nil(t, dto.FormatFechaHoraPtr(nil))
}

func TestSanitizar(t *testing.T) {
	assert.Equal(t, "Taller", dto.Sanitizar("  Taller\n"))
	// "Tránsito" descompuesto (a + combining acute) debe quedar en forma compuesta.
	assert.Equal(t, "Tránsito", dto.Sanitizar("Tránsito"))
	assert.Equal(t, "", dto.Sanitizar("   "))
}
