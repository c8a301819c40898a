package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                 = errors.New("recurso no encontrado")
	ErrCanastillaNotFound       = errors.New("no existe una canastilla con este ID")
	ErrMovimientoNotFound       = errors.New("no existe un movimiento con este ID")
	ErrUsuarioNotFound          = errors.New("no existe un usuario con este ID")
	ErrDuplicate                = errors.New("ya existe una canastilla con este ID")
	ErrEmailAlreadyExists       = errors.New("ya existe un usuario con este email")
	ErrInvalidInput             = errors.New("entrada inválida")
	ErrCanastillaConMovimientos = errors.New("no se puede eliminar la canastilla porque tiene movimientos asociados")
	ErrUsuarioConMovimientos    = errors.New("no se puede eliminar el usuario porque tiene movimientos asociados")
)
