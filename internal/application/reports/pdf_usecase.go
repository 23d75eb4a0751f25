package reports

import (
	"context"
	"time"

	"github.com/jhoicas/reventa-api/internal/application/dto"
)

// SalesReportPDFGenerator puerto para renderizar el reporte de ventas como PDF
// (implementado en infrastructure/pdf con Maroto).
type SalesReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, from, to time.Time, rows []dto.ProductSalesDTO) ([]byte, error)
}

// PDFUseCase exporta el reporte de ventas por producto como PDF descargable.
type PDFUseCase struct {
	reports   *UseCase
	generator SalesReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(reports *UseCase, generator SalesReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{reports: reports, generator: generator}
}

// SalesByProductPDF arma el reporte del período y lo renderiza.
func (uc *PDFUseCase) SalesByProductPDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	rows, err := uc.reports.SalesByProduct(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateSalesReportPDF(ctx, from, to, rows)
}
