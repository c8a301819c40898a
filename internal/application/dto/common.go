package dto

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Formatos fijos de fecha del contrato JSON. Se reproducen tal cual los emitía
// el sistema anterior; los clientes del dashboard los parsean con estos layouts.
const (
	LayoutFecha     = "2006-01-02"
	LayoutFechaHora = "2006-01-02 15:04:05"
)

// ErrorResponse cuerpo de error HTTP: mensaje corto localizado, sin detalle interno.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirmación de una mutación.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse envoltura {"data": ...} de listados y lecturas.
type DataResponse struct {
	Data any `json:"data"`
}

// FormatFecha renderiza una fecha de solo día (YYYY-MM-DD).
func FormatFecha(t time.Time) string {
	return t.Format(LayoutFecha)
}

// FormatFechaHora renderiza una fecha con hora (YYYY-MM-DD HH:MM:SS).
func FormatFechaHora(t time.Time) string {
	return t.Format(LayoutFechaHora)
}

// FormatFechaHoraPtr renderiza una fecha opcional; nil se serializa como null.
func FormatFechaHoraPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(LayoutFechaHora)
	return &s
}

// Sanitizar normaliza texto libre de entrada: recorta espacios y aplica NFC para
// que comparaciones como destino == "Taller" no dependan de la forma Unicode
// que envíe el cliente ("Tránsito" compuesto vs. descompuesto).
func Sanitizar(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
