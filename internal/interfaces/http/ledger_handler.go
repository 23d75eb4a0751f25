package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/application/ledger"
)

// LedgerHandler maneja las peticiones HTTP del ledger de inventario:
// compras, ventas y ajustes, más sus listados históricos.
type LedgerHandler struct {
	uc      *ledger.UseCase
	history *ledger.HistoryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase, history *ledger.HistoryUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc, history: history}
}

// RecordPurchase godoc
// @Summary      Registrar compra
// @Description  Inserta la compra en el ledger y suma el stock en la misma transacción.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *LedgerHandler) RecordPurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.RecordPurchase(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordSale godoc
// @Summary      Registrar venta
// @Description  Descuenta el stock con guarda de no-negatividad y guarda la foto del costo. 409 si no alcanza el stock o si perdió la carrera contra otra venta.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *LedgerHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.RecordSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AdjustStock godoc
// @Summary      Registrar ajuste de inventario
// @Description  Fija el stock en un valor contado y deja la entrada compensatoria en el ledger. Las compras y ventas ya registradas nunca se editan.
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Datos del ajuste"
// @Success      201   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/adjustments [post]
func (h *LedgerHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.AdjustStock(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPurchases godoc
// @Summary      Listar compras
// @Tags         ledger
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        from         query  string  false  "Desde (RFC 3339 o YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (exclusivo)"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PurchaseListResponse
// @Router       /api/purchases [get]
func (h *LedgerHandler) ListPurchases(c *fiber.Ctx) error {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	out, err := h.history.ListPurchases(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListSales godoc
// @Summary      Listar ventas
// @Tags         ledger
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        customer_id  query  string  false  "Filtrar por cliente"
// @Param        from         query  string  false  "Desde (RFC 3339 o YYYY-MM-DD)"
// @Param        to           query  string  false  "Hasta (exclusivo)"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *LedgerHandler) ListSales(c *fiber.Ctx) error {
	filter, err := parseHistoryFilter(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	out, err := h.history.ListSales(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAdjustments godoc
// @Summary      Listar ajustes de un producto
// @Tags         ledger
// @Produce      json
// @Param        product_id  query  string  true   "Producto"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/adjustments [get]
func (h *LedgerHandler) ListAdjustments(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return badRequest(c, "VALIDATION", "product_id es requerido")
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	page.DefaultPage()
	out, err := h.history.ListAdjustments(productID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseHistoryFilter arma el filtro del ledger desde la query string.
func parseHistoryFilter(c *fiber.Ctx) (ledger.HistoryFilter, error) {
	filter := ledger.HistoryFilter{
		ProductID:  c.Query("product_id"),
		SupplierID: c.Query("supplier_id"),
		CustomerID: c.Query("customer_id"),
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
	}
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return filter, err
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return filter, err
	}
	filter.From = from
	filter.To = to
	return filter, nil
}

// parseTimeParam acepta RFC 3339 o fecha simple YYYY-MM-DD (UTC).
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
