package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/reventa-api/internal/application/reports"
)

// ReportHandler maneja las consultas de reportes y el dashboard.
type ReportHandler struct {
	uc  *reports.UseCase
	pdf *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, pdf *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Dashboard godoc
// @Summary      Dashboard del negocio
// @Description  Métricas del mes en curso: productos activos, alertas de stock, valor del inventario, ventas, ganancia bruta y neta (descontando costos fijos).
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByProduct godoc
// @Summary      Ventas por producto
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Desde (RFC 3339 o YYYY-MM-DD); default: hace 30 días"
// @Param        to    query  string  false  "Hasta (exclusivo); default: ahora"
// @Success      200   {array}  dto.ProductSalesDTO
// @Router       /api/reports/sales-by-product [get]
func (h *ReportHandler) SalesByProduct(c *fiber.Ctx) error {
	from, to, err := reportPeriod(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	out, err := h.uc.SalesByProduct(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByProductPDF godoc
// @Summary      Ventas por producto en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        from  query  string  false  "Desde (RFC 3339 o YYYY-MM-DD); default: hace 30 días"
// @Param        to    query  string  false  "Hasta (exclusivo); default: ahora"
// @Success      200   {file}  binary
// @Router       /api/reports/sales-by-product/pdf [get]
func (h *ReportHandler) SalesByProductPDF(c *fiber.Ctx) error {
	from, to, err := reportPeriod(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	pdfBytes, err := h.pdf.SalesByProductPDF(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ventas.pdf"`)
	return c.Send(pdfBytes)
}

// PurchasesBySupplier godoc
// @Summary      Compras por proveedor
// @Tags         reports
// @Produce      json
// @Param        from  query  string  false  "Desde (RFC 3339 o YYYY-MM-DD); default: hace 30 días"
// @Param        to    query  string  false  "Hasta (exclusivo); default: ahora"
// @Success      200   {array}  dto.SupplierPurchasesDTO
// @Router       /api/reports/purchases-by-supplier [get]
func (h *ReportHandler) PurchasesBySupplier(c *fiber.Ctx) error {
	from, to, err := reportPeriod(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	out, err := h.uc.PurchasesBySupplier(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesSeries godoc
// @Summary      Serie temporal de ventas
// @Tags         reports
// @Produce      json
// @Param        bucket  query  string  false  "day o month"  default(day)
// @Param        from    query  string  false  "Desde (RFC 3339 o YYYY-MM-DD); default: hace 30 días"
// @Param        to      query  string  false  "Hasta (exclusivo); default: ahora"
// @Success      200     {array}  dto.SalesBucketDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/sales-series [get]
func (h *ReportHandler) SalesSeries(c *fiber.Ctx) error {
	from, to, err := reportPeriod(c)
	if err != nil {
		return badRequest(c, "INVALID_QUERY", err.Error())
	}
	bucket := c.Query("bucket", "day")
	out, err := h.uc.SalesSeries(c.Context(), from, to, bucket)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// reportPeriod resuelve [from, to) de la query; por defecto los últimos 30 días.
func reportPeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if f, err := parseTimeParam(c.Query("from")); err != nil {
		return from, to, err
	} else if f != nil {
		from = *f
	}
	if t, err := parseTimeParam(c.Query("to")); err != nil {
		return from, to, err
	} else if t != nil {
		to = *t
	}
	return from, to, nil
}
