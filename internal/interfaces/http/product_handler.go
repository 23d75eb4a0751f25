package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/application/ledger"
	"github.com/jhoicas/reventa-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product, incluyendo las
// operaciones de precio (costo y margen) que delegan en el ledger.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	ledger *ledger.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, ledgerUC *ledger.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc, ledger: ledgerUC}
}

// Create godoc
// @Summary      Crear producto
// @Description  El código se genera con el código de la categoría (ej. TABNAT-0001). El stock inicia en cero: se carga con compras.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        all     query  bool  false  "Incluir productos dados de baja"
// @Param        limit   query  int   false  "Límite"   default(20)
// @Param        offset  query  int   false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	page.DefaultPage()
	onlyActive := !c.QueryBool("all", false)
	out, err := h.uc.List(onlyActive, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLowStock godoc
// @Summary      Lista de reposición
// @Description  Productos activos con stock en o por debajo de su umbral de alerta.
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.LowStockDTO
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) ListLowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar metadata del producto
// @Description  No toca costo, precio ni stock: esos campos se mueven por sus operaciones dedicadas.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Dar de baja un producto
// @Description  Baja lógica: el historial de compras y ventas queda intacto.
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPricing godoc
// @Summary      Fijar precio del producto
// @Description  Enviar price (modo manual) o margin_percent (el precio se deriva del costo), nunca ambos.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del producto"
// @Param        body  body  dto.SetPricingRequest  true  "Precio manual o margen"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/pricing [put]
func (h *ProductHandler) SetPricing(c *fiber.Ctx) error {
	var in dto.SetPricingRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.ledger.SetPricing(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateCost godoc
// @Summary      Actualizar costo del producto
// @Description  En modo margen el precio de venta se recalcula. Las ventas ya registradas conservan su foto de costo.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del producto"
// @Param        body  body  dto.UpdateCostRequest  true  "Nuevo costo unitario"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/cost [put]
func (h *ProductHandler) UpdateCost(c *fiber.Ctx) error {
	var in dto.UpdateCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.ledger.UpdateCost(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
