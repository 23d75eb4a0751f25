package ledger

import (
	"context"

	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: o se
// persiste todo (entrada del ledger + stock) o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		adjustmentRepo repository.AdjustmentRepository,
	) error) error
}
