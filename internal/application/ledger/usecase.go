// Package ledger implementa el núcleo del sistema: el libro de compras y
// ventas y el invariante de stock.
//
// Invariante: para todo producto, stock = Σ compras − Σ ventas (± ajustes) y
// stock >= 0 siempre. Cada operación es una única transacción: la fila del
// producto se bloquea (SELECT FOR UPDATE) y el decremento de ventas además es
// condicional ("stock = stock - n WHERE stock >= n"), de modo que dos ventas
// concurrentes nunca pueden pasar el chequeo contra un stock desactualizado.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/pricing"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
	"github.com/jhoicas/reventa-api/internal/metrics"
)

// UseCase agrupa las operaciones mutantes del ledger de inventario.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
	}
}

// RecordPurchase registra una compra: inserta la entrada del ledger y suma la
// cantidad al stock del producto en una única transacción.
func (uc *UseCase) RecordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	out, err := uc.recordPurchase(ctx, in)
	observe("record_purchase", err)
	return out, err
}

func (uc *UseCase) recordPurchase(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "debe ser mayor a cero")
	}
	if in.UnitCost.IsNegative() {
		return nil, domain.NewValidationError("unit_cost", "no puede ser negativo")
	}

	// Validar referencias antes de abrir la transacción
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	occurredAt := occurredOrNow(in.OccurredAt)
	now := time.Now().UTC()
	unitCost := in.UnitCost.Round(2)

	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		UnitCost:   unitCost,
		Total:      unitCost.Mul(decimal.NewFromInt(in.Quantity)).Round(2),
		Note:       in.Note,
		OccurredAt: occurredAt,
		CreatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
		_ repository.AdjustmentRepository,
	) error {
		// Bloquea la fila del producto; también verifica que exista
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		return productRepo.IncrementStock(in.ProductID, in.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// RecordSale registra una venta: chequea stock suficiente, descuenta la
// cantidad y guarda la entrada del ledger con el costo y la ganancia de ese
// momento, todo en una única transacción.
func (uc *UseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	out, err := uc.recordSale(ctx, in)
	observe("record_sale", err)
	return out, err
}

func (uc *UseCase) recordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("quantity", "debe ser mayor a cero")
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.NewValidationError("unit_price", "no puede ser negativo")
	}
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	occurredAt := occurredOrNow(in.OccurredAt)
	now := time.Now().UTC()
	unitPrice := in.UnitPrice.Round(2)

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		_ repository.AdjustmentRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}
		// Decremento condicional: si otra transacción ganó la carrera y no
		// queda stock, cero filas afectadas => conflicto reintentable.
		ok, err := productRepo.DecrementStock(in.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}

		sale = &entity.Sale{
			ID:         uuid.New().String(),
			ProductID:  in.ProductID,
			CustomerID: in.CustomerID,
			Quantity:   in.Quantity,
			UnitPrice:  unitPrice,
			UnitCost:   product.Cost, // foto del costo al momento de la venta
			Total:      unitPrice.Mul(decimal.NewFromInt(in.Quantity)).Round(2),
			Profit:     pricing.Profit(in.Quantity, unitPrice, product.Cost),
			OccurredAt: occurredAt,
			CreatedAt:  now,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// AdjustStock registra una corrección manual de inventario: fija el stock en
// NewQty y deja la entrada compensatoria con la cantidad anterior y la nueva.
func (uc *UseCase) AdjustStock(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustmentResponse, error) {
	out, err := uc.adjustStock(ctx, in)
	observe("adjust_stock", err)
	return out, err
}

func (uc *UseCase) adjustStock(ctx context.Context, in dto.AdjustStockRequest) (*dto.AdjustmentResponse, error) {
	if in.NewQty < 0 {
		return nil, domain.NewValidationError("new_qty", "no puede ser negativo")
	}
	if in.Reason == "" {
		return nil, domain.NewValidationError("reason", "es requerido")
	}

	now := time.Now().UTC()
	var adj *entity.StockAdjustment
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
		adjustmentRepo repository.AdjustmentRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		adj = &entity.StockAdjustment{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			PreviousQty: product.Stock,
			NewQty:      in.NewQty,
			Delta:       in.NewQty - product.Stock,
			Reason:      in.Reason,
			Note:        in.Note,
			OccurredAt:  now,
			CreatedAt:   now,
		}
		if err := adjustmentRepo.Create(adj); err != nil {
			return err
		}
		return productRepo.SetStock(in.ProductID, in.NewQty)
	})
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponse(adj), nil
}

func occurredOrNow(t *time.Time) time.Time {
	if t != nil {
		return t.UTC()
	}
	return time.Now().UTC()
}

// observe clasifica el resultado de la operación para el contador Prometheus.
func observe(op string, err error) {
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidInput):
		result = metrics.ResultValidation
	case errors.Is(err, domain.ErrNotFound):
		result = metrics.ResultNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		result = metrics.ResultInsufficientStock
	case errors.Is(err, domain.ErrConflict):
		result = metrics.ResultConflict
	default:
		result = metrics.ResultError
	}
	metrics.LedgerOperations.WithLabelValues(op, result).Inc()
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:         p.ID,
		ProductID:  p.ProductID,
		SupplierID: p.SupplierID,
		Quantity:   p.Quantity,
		UnitCost:   p.UnitCost,
		Total:      p.Total,
		Note:       p.Note,
		OccurredAt: p.OccurredAt,
		CreatedAt:  p.CreatedAt,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		CustomerID: s.CustomerID,
		Quantity:   s.Quantity,
		UnitPrice:  s.UnitPrice,
		UnitCost:   s.UnitCost,
		Total:      s.Total,
		Profit:     s.Profit,
		OccurredAt: s.OccurredAt,
		CreatedAt:  s.CreatedAt,
	}
}

func toAdjustmentResponse(a *entity.StockAdjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:          a.ID,
		ProductID:   a.ProductID,
		PreviousQty: a.PreviousQty,
		NewQty:      a.NewQty,
		Delta:       a.Delta,
		Reason:      a.Reason,
		Note:        a.Note,
		OccurredAt:  a.OccurredAt,
		CreatedAt:   a.CreatedAt,
	}
}
