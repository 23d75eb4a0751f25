package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/application/ledger"
	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/pricing"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// Margen teórico por defecto cuando el alta no trae precio ni margen.
var defaultMarginPercent = decimal.NewFromInt(30)

// ProductUseCase casos de uso CRUD para productos. El stock y el precio no se
// modifican por acá: pasan por las operaciones del ledger.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un producto con stock 0 (la primera compra lo sube) y el código
// generado a partir del código de la categoría (ej. TABNAT-0001).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if in.Cost.IsNegative() {
		return nil, domain.NewValidationError("cost", "no puede ser negativo")
	}
	if in.Price != nil && in.MarginPercent != nil {
		return nil, domain.NewValidationError("price", "indicar price o margin_percent, no ambos")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "no puede ser negativo")
	}
	if in.MarginPercent != nil && in.MarginPercent.IsNegative() {
		return nil, domain.NewValidationError("margin_percent", "no puede ser negativo")
	}
	if in.MinStock < 0 {
		return nil, domain.NewValidationError("min_stock", "no puede ser negativo")
	}

	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	codes, err := uc.repo.ListCodesByPrefix(category.Code + "-")
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(codes))
	for _, c := range codes {
		used[c] = true
	}

	cost := in.Cost.Round(2)
	mode := entity.PricingModeMargin
	margin := defaultMarginPercent
	var price decimal.Decimal
	switch {
	case in.Price != nil:
		mode = entity.PricingModeManual
		margin = decimal.Zero
		price = in.Price.Round(2)
	case in.MarginPercent != nil:
		margin = *in.MarginPercent
		price = pricing.SuggestedPrice(cost, margin)
	default:
		price = pricing.SuggestedPrice(cost, margin)
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          nextProductCode(category.Code, used),
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		Cost:          cost,
		Price:         price,
		PricingMode:   mode,
		MarginPercent: margin,
		Stock:         0,
		MinStock:      in.MinStock,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ledger.ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ledger.ToProductResponse(product), nil
}

// List lista productos con paginación; onlyActive filtra los dados de baja.
func (uc *ProductUseCase) List(onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ledger.ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock devuelve los productos activos en o por debajo de su umbral.
func (uc *ProductUseCase) ListLowStock() ([]dto.LowStockDTO, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockDTO, 0, len(list))
	for _, p := range list {
		items = append(items, dto.LowStockDTO{
			ProductID:   p.ID,
			ProductCode: p.Code,
			ProductName: p.Name,
			Stock:       p.Stock,
			MinStock:    p.MinStock,
		})
	}
	return items, nil
}

// Update actualiza metadata del producto. Cost, Price y Stock no se tocan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		product.SupplierID = *in.SupplierID
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.NewValidationError("min_stock", "no puede ser negativo")
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ledger.ToProductResponse(product), nil
}

// Deactivate da de baja lógica un producto; el historial del ledger se conserva.
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}
