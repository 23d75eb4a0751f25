package ledger

import (
	"context"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/pricing"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// SetPricing fija el precio de venta de un producto: manual (price) o por
// margen teórico (margin_percent). El modo queda persistido para que futuros
// cambios de costo mantengan el precio consistente bajo modo margen.
func (uc *UseCase) SetPricing(ctx context.Context, productID string, in dto.SetPricingRequest) (*dto.ProductResponse, error) {
	out, err := uc.setPricing(ctx, productID, in)
	observe("set_pricing", err)
	return out, err
}

func (uc *UseCase) setPricing(ctx context.Context, productID string, in dto.SetPricingRequest) (*dto.ProductResponse, error) {
	if (in.Price == nil) == (in.MarginPercent == nil) {
		return nil, domain.NewValidationError("price", "indicar price o margin_percent, exactamente uno")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "no puede ser negativo")
	}
	if in.MarginPercent != nil && in.MarginPercent.IsNegative() {
		return nil, domain.NewValidationError("margin_percent", "no puede ser negativo")
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
		_ repository.AdjustmentRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Price != nil {
			product.PricingMode = entity.PricingModeManual
			product.Price = in.Price.Round(2)
		} else {
			product.PricingMode = entity.PricingModeMargin
			product.MarginPercent = *in.MarginPercent
			product.Price = pricing.SuggestedPrice(product.Cost, product.MarginPercent)
		}
		if err := productRepo.UpdatePricing(product.ID, product.PricingMode, product.MarginPercent, product.Price); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToProductResponse(updated), nil
}

// UpdateCost actualiza el costo unitario del producto. Bajo modo margen el
// precio de venta se recalcula en la misma transacción; las ventas ya
// registradas conservan el costo con el que se hicieron.
func (uc *UseCase) UpdateCost(ctx context.Context, productID string, in dto.UpdateCostRequest) (*dto.ProductResponse, error) {
	out, err := uc.updateCost(ctx, productID, in)
	observe("update_cost", err)
	return out, err
}

func (uc *UseCase) updateCost(ctx context.Context, productID string, in dto.UpdateCostRequest) (*dto.ProductResponse, error) {
	if in.Cost.IsNegative() {
		return nil, domain.NewValidationError("cost", "no puede ser negativo")
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		_ repository.SaleRepository,
		_ repository.AdjustmentRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Cost = in.Cost.Round(2)
		if product.PricingMode == entity.PricingModeMargin {
			product.Price = pricing.SuggestedPrice(product.Cost, product.MarginPercent)
		}
		if err := productRepo.UpdateCost(product.ID, product.Cost, product.Price); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToProductResponse(updated), nil
}

// ToProductResponse mapea la entidad al DTO de salida (incluye margen real).
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		Cost:          p.Cost,
		Price:         p.Price,
		PricingMode:   p.PricingMode,
		MarginPercent: p.MarginPercent,
		RealMargin:    pricing.RealMargin(p.Cost, p.Price),
		Stock:         p.Stock,
		MinStock:      p.MinStock,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
