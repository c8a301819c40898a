package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/canastillas-api/internal/application/dto"
	"github.com/jhoicas/canastillas-api/internal/application/usecase"
	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
	"github.com/jhoicas/canastillas-api/pkg/logger"
)

// CanastillaHandler maneja las peticiones HTTP del inventario de canastillas.
type CanastillaHandler struct {
	uc  *usecase.CanastillaUseCase
	log *logger.Logger
}

// NewCanastillaHandler construye el handler.
func NewCanastillaHandler(uc *usecase.CanastillaUseCase, log *logger.Logger) *CanastillaHandler {
	return &CanastillaHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar inventario de canastillas
// @Tags         canastillas
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventario [get]
func (h *CanastillaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error al obtener el inventario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// GetByID godoc
// @Summary      Obtener canastilla por ID
// @Tags         canastillas
// @Produce      json
// @Param        id   path  string  true  "ID de la canastilla"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/canastilla/{id} [get]
func (h *CanastillaHandler) GetByID(c *fiber.Ctx) error {
	id := dto.Sanitizar(c.Params("id"))
	out, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("id_canastilla", id).Msg("error al obtener la canastilla")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Canastilla no encontrada"})
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// Create godoc
// @Summary      Registrar canastilla
// @Tags         canastillas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCanastillaRequest  true  "Datos de la canastilla"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/canastilla/add [post]
func (h *CanastillaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCanastillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	in.IDCanastilla = dto.Sanitizar(in.IDCanastilla)
	in.Estado = dto.Sanitizar(in.Estado)
	in.Ubicacion = dto.Sanitizar(in.Ubicacion)
	if in.IDCanastilla == "" || in.Estado == "" || in.Ubicacion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	estado, err := entity.ParseEstadoCanastilla(in.Estado)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Estado inválido"})
	}

	if err := h.uc.Crear(c.Context(), in.IDCanastilla, estado, in.Ubicacion); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Ya existe una canastilla con este ID"})
		}
		h.log.Error().Err(err).Str("id_canastilla", in.IDCanastilla).Msg("error al agregar canastilla")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al agregar la canastilla"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Canastilla %s agregada con éxito", in.IDCanastilla),
	})
}

// Update godoc
// @Summary      Actualizar canastilla (edición directa, sin movimiento)
// @Tags         canastillas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la canastilla"
// @Param        body  body  dto.ActualizarCanastillaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/canastilla/{id} [put]
func (h *CanastillaHandler) Update(c *fiber.Ctx) error {
	id := dto.Sanitizar(c.Params("id"))
	var in dto.ActualizarCanastillaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	in.Estado = dto.Sanitizar(in.Estado)
	in.Ubicacion = dto.Sanitizar(in.Ubicacion)
	if in.Estado == "" || in.Ubicacion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	estado, err := entity.ParseEstadoCanastilla(in.Estado)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Estado inválido"})
	}

	if err := h.uc.Actualizar(c.Context(), id, estado, in.Ubicacion); err != nil {
		if errors.Is(err, domain.ErrCanastillaNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No existe una canastilla con este ID"})
		}
		h.log.Error().Err(err).Str("id_canastilla", id).Msg("error al actualizar canastilla")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar la canastilla"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Canastilla %s actualizada con éxito", id)})
}

// Delete godoc
// @Summary      Eliminar canastilla
// @Tags         canastillas
// @Produce      json
// @Param        id   path  string  true  "ID de la canastilla"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/canastilla/{id} [delete]
func (h *CanastillaHandler) Delete(c *fiber.Ctx) error {
	id := dto.Sanitizar(c.Params("id"))
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrCanastillaNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No existe una canastilla con este ID"})
		case errors.Is(err, domain.ErrCanastillaConMovimientos):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No se puede eliminar la canastilla porque tiene movimientos asociados"})
		}
		h.log.Error().Err(err).Str("id_canastilla", id).Msg("error al eliminar canastilla")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar la canastilla"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Canastilla %s eliminada con éxito", id)})
}
