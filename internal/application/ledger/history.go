package ledger

import (
	"time"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// HistoryUseCase lectura del ledger: compras y ventas ya registradas.
// Es la cara de consulta del libro; nunca modifica nada.
type HistoryUseCase struct {
	purchaseRepo   repository.PurchaseRepository
	saleRepo       repository.SaleRepository
	adjustmentRepo repository.AdjustmentRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	adjustmentRepo repository.AdjustmentRepository,
) *HistoryUseCase {
	return &HistoryUseCase{
		purchaseRepo:   purchaseRepo,
		saleRepo:       saleRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// HistoryFilter filtros de consulta del ledger.
type HistoryFilter struct {
	ProductID  string
	SupplierID string
	CustomerID string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

func (f HistoryFilter) toRepoFilter() repository.LedgerFilter {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	return repository.LedgerFilter{
		ProductID:  f.ProductID,
		SupplierID: f.SupplierID,
		CustomerID: f.CustomerID,
		From:       f.From,
		To:         f.To,
		Limit:      limit,
		Offset:     offset,
	}
}

// ListPurchases lista compras con filtros y paginación.
func (uc *HistoryUseCase) ListPurchases(filter HistoryFilter) (*dto.PurchaseListResponse, error) {
	rf := filter.toRepoFilter()
	list, err := uc.purchaseRepo.List(rf)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: rf.Limit, Offset: rf.Offset},
	}, nil
}

// ListSales lista ventas con filtros y paginación.
func (uc *HistoryUseCase) ListSales(filter HistoryFilter) (*dto.SaleListResponse, error) {
	rf := filter.toRepoFilter()
	list, err := uc.saleRepo.List(rf)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: rf.Limit, Offset: rf.Offset},
	}, nil
}

// ListAdjustments lista los ajustes de un producto, del más reciente al más viejo.
func (uc *HistoryUseCase) ListAdjustments(productID string, limit, offset int) ([]dto.AdjustmentResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.adjustmentRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdjustmentResponse(a))
	}
	return items, nil
}
