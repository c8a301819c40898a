package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/canastillas-api/internal/application/dto"
	"github.com/jhoicas/canastillas-api/internal/application/tracking"
	"github.com/jhoicas/canastillas-api/internal/domain"
	"github.com/jhoicas/canastillas-api/internal/domain/entity"
	"github.com/jhoicas/canastillas-api/pkg/logger"
)

// MovimientoHandler maneja las peticiones HTTP de la bitácora de movimientos.
type MovimientoHandler struct {
	uc  *tracking.MovimientoUseCase
	log *logger.Logger
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *tracking.MovimientoUseCase, log *logger.Logger) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, log: log}
}

// parseMovimientoID valida el :id numérico de la ruta. El mensaje de error es
// contrato con el frontend.
func parseMovimientoID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// validarMovimiento sanea y valida el cuerpo. Todos los campos son
// obligatorios; un responsable en cero cuenta como ausente.
func validarMovimiento(in *dto.MovimientoRequest) (tracking.MovimientoInput, *dto.ErrorResponse) {
	in.IDCanastilla = dto.Sanitizar(in.IDCanastilla)
	in.TipoMovimiento = dto.Sanitizar(in.TipoMovimiento)
	in.UbicacionOrigen = dto.Sanitizar(in.UbicacionOrigen)
	in.UbicacionDestino = dto.Sanitizar(in.UbicacionDestino)

	if in.IDCanastilla == "" || in.TipoMovimiento == "" || in.UbicacionOrigen == "" ||
		in.UbicacionDestino == "" || in.IDUsuarioResponsable == 0 {
		return tracking.MovimientoInput{}, &dto.ErrorResponse{Error: "Datos incompletos"}
	}
	tipo, err := entity.ParseTipoMovimiento(in.TipoMovimiento)
	if err != nil {
		return tracking.MovimientoInput{}, &dto.ErrorResponse{Error: "Tipo de movimiento inválido"}
	}
	return tracking.MovimientoInput{
		CanastillaID:         in.IDCanastilla,
		Tipo:                 tipo,
		UbicacionOrigen:      in.UbicacionOrigen,
		UbicacionDestino:     in.UbicacionDestino,
		UsuarioResponsableID: in.IDUsuarioResponsable,
	}, nil
}

// List godoc
// @Summary      Listar movimientos (bitácora completa, fecha descendente)
// @Tags         movimientos
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	movs, err := h.uc.Listar(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error al obtener movimientos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	out := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoAListado(m))
	}
	return c.JSON(dto.DataResponse{Data: out})
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.DataResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimiento/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseMovimientoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de movimiento inválido"})
	}
	m, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id_movimiento", id).Msg("error al obtener el movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno del servidor"})
	}
	if m == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Movimiento no encontrado"})
	}
	return c.JSON(dto.DataResponse{Data: dto.MovimientoADetalle(*m)})
}

// Create godoc
// @Summary      Registrar movimiento (deriva el estado de la canastilla)
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimientoRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimiento/add [post]
func (h *MovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	input, badReq := validarMovimiento(&in)
	if badReq != nil {
		return c.Status(fiber.StatusBadRequest).JSON(badReq)
	}

	if err := h.uc.Registrar(c.Context(), input); err != nil {
		if errors.Is(err, domain.ErrCanastillaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No existe una canastilla con este ID"})
		}
		h.log.Error().Err(err).Str("id_canastilla", input.CanastillaID).Msg("error al agregar movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al registrar el movimiento"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Movimiento registrado con éxito para la canastilla %s", input.CanastillaID),
	})
}

// Update godoc
// @Summary      Actualizar movimiento (re-deriva si cambia canastilla o tipo)
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del movimiento"
// @Param        body  body  dto.MovimientoRequest  true  "Datos del movimiento"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimiento/{id} [put]
func (h *MovimientoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseMovimientoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de movimiento inválido"})
	}
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos incompletos"})
	}
	input, badReq := validarMovimiento(&in)
	if badReq != nil {
		return c.Status(fiber.StatusBadRequest).JSON(badReq)
	}

	if err := h.uc.Actualizar(c.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, domain.ErrMovimientoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No existe un movimiento con este ID"})
		case errors.Is(err, domain.ErrCanastillaNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No existe una canastilla con este ID"})
		}
		h.log.Error().Err(err).Int64("id_movimiento", id).Msg("error al actualizar movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al actualizar el movimiento"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Movimiento %d actualizado con éxito", id)})
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         movimientos
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimiento/{id} [delete]
func (h *MovimientoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseMovimientoID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID de movimiento inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMovimientoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No existe un movimiento con este ID"})
		}
		h.log.Error().Err(err).Int64("id_movimiento", id).Msg("error al eliminar movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al eliminar el movimiento"})
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Movimiento %d eliminado con éxito", id)})
}
