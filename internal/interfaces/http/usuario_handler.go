package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/canastillas-api/internal/application/dto"
	"github.com/jhoicas/canastillas-api/internal/application/usecase"
	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/pkg/logger"
)

// UsuarioHandler maneja las peticiones HTTP de administración de usuarios.
type UsuarioHandler struct {
	uc  *usecase.UsuarioUseCase
	log *logger.Logger
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase, log *logger.Logger) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, log: log}
}

func parseUsuarioID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error al obtener usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.DataResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuario/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseUsuarioID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de usuario inválido"})
	}
	out, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id_usuario", id).Msg("error al obtener el usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Create godoc
// @Summary      Registrar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuario/add [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	in.Nombre = dto.Sanitizar(in.Nombre)
	in.Email = dto.Sanitizar(in.Email)
	in.Rol = dto.Sanitizar(in.Rol)
	in.Estado = dto.Sanitizar(in.Estado)
	if in.Nombre == "" || in.Email == "" || in.Password == "" || in.Rol == "" || in.Estado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}

	if err := h.uc.Crear(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Ya existe un usuario con este email"})
		}
		h.log.Error().Err(err).Str("email", in.Email).Msg("error al agregar usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al agregar el usuario"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Usuario %s agregado con éxito", in.Nombre),
	})
}

// Update godoc
// @Summary      Actualizar usuario (password opcional)
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.ActualizarUsuarioRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuario/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, ok := parseUsuarioID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de usuario inválido"})
	}
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	in.Nombre = dto.Sanitizar(in.Nombre)
	in.Email = dto.Sanitizar(in.Email)
	in.Rol = dto.Sanitizar(in.Rol)
	in.Estado = dto.Sanitizar(in.Estado)
	if in.Nombre == "" || in.Email == "" || in.Rol == "" || in.Estado == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}

	if err := h.uc.Actualizar(c.Context(), id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No existe un usuario con este ID"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Ya existe otro usuario con este email"})
		}
		h.log.Error().Err(err).Int64("id_usuario", id).Msg("error al actualizar usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar el usuario"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Usuario %s actualizado con éxito", in.Nombre)})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuario/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseUsuarioID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de usuario inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No existe un usuario con este ID"})
		case errors.Is(err, domain.ErrUsuarioConMovimientos):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No se puede eliminar el usuario porque tiene movimientos asociados"})
		}
		h.log.Error().Err(err).Int64("id_usuario", id).Msg("error al eliminar usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar el usuario"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Usuario %d eliminado con éxito", id)})
}
