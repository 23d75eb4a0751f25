package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/application/usecase"
)

// FixedCostHandler maneja las peticiones HTTP para costos fijos mensuales.
type FixedCostHandler struct {
	uc *usecase.FixedCostUseCase
}

// NewFixedCostHandler construye el handler.
func NewFixedCostHandler(uc *usecase.FixedCostUseCase) *FixedCostHandler {
	return &FixedCostHandler{uc: uc}
}

// Create godoc
// @Summary      Crear costo fijo
// @Tags         fixed-costs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFixedCostRequest  true  "Datos del costo fijo"
// @Success      201   {object}  dto.FixedCostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fixed-costs [post]
func (h *FixedCostHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFixedCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar costos fijos vigentes
// @Tags         fixed-costs
// @Produce      json
// @Success      200  {array}  dto.FixedCostResponse
// @Router       /api/fixed-costs [get]
func (h *FixedCostHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar costo fijo
// @Tags         fixed-costs
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del costo fijo"
// @Param        body  body  dto.UpdateFixedCostRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.FixedCostResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fixed-costs/{id} [put]
func (h *FixedCostHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFixedCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "costo fijo no encontrado")
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Dar de baja un costo fijo
// @Tags         fixed-costs
// @Param        id  path  string  true  "ID del costo fijo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fixed-costs/{id} [delete]
func (h *FixedCostHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
