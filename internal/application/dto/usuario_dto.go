package dto

import "github.com/jhoicas/canastillas-api/internal/domain/entity"

// CrearUsuarioRequest cuerpo de POST /api/usuario/add. Todos los campos obligatorios.
type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
}

// ActualizarUsuarioRequest cuerpo de PUT /api/usuario/:id. Password es opcional:
// vacío conserva el hash actual.
type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
	Password string `json:"password"`
}

// UsuarioResponse un usuario en listados y lectura individual. Nunca expone el hash.
type UsuarioResponse struct {
	IDUsuario     int64   `json:"id_usuario"`
	Nombre        string  `json:"nombre"`
	Email         string  `json:"email"`
	Rol           string  `json:"rol"`
	Estado        string  `json:"estado"`
	FechaCreacion string  `json:"fecha_creacion"`
	UltimoAcceso  *string `json:"ultimo_acceso"`
}

// UsuarioAResponse mapea la entidad a la respuesta pública.
func UsuarioAResponse(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		IDUsuario:     u.ID,
		Nombre:        u.Nombre,
		Email:         u.Email,
		Rol:           u.Rol,
		Estado:        u.Estado,
		FechaCreacion: FormatFechaHora(u.FechaCreacion),
		UltimoAcceso:  FormatFechaHoraPtr(u.UltimoAcceso),
	}
}
