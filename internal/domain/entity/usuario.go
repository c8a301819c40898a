package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
	RolConsulta = "consulta"
)

// Usuario representa un usuario interno del área logística.
type Usuario struct {
	ID            int64
	Nombre        string
	Email         string
	PasswordHash  string // digest, nunca texto plano después de persistir
	Rol           string
	Estado        string // activo, inactivo
	FechaCreacion time.Time
	UltimoAcceso  *time.Time // nulo hasta que el usuario inicie sesión
}
