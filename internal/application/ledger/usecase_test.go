package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/application/ledger"
	"github.com/jhoicas/reventa-api/internal/domain"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore simula la base: mapa de productos + listas append-only del ledger.
// El mutex cumple el rol de la transacción: las operaciones del TxRunner corren
// serializadas, igual que con la fila bloqueada por SELECT FOR UPDATE.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu          sync.Mutex
	products    map[string]*entity.Product
	purchases   []*entity.Purchase
	sales       []*entity.Sale
	adjustments []*entity.StockAdjustment
	suppliers   map[string]*entity.Supplier
	customers   map[string]*entity.Customer

	// loseRace fuerza que DecrementStock devuelva cero filas afectadas,
	// simulando otra transacción que ganó la carrera entre el chequeo y el
	// decremento.
	loseRace bool
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		suppliers: make(map[string]*entity.Supplier),
		customers: make(map[string]*entity.Customer),
	}
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(string) (*entity.Product, error)      { return nil, nil }
func (r *memProductRepo) ListCodesByPrefix(string) ([]string, error)     { return nil, nil }
func (r *memProductRepo) List(bool, int, int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListLowStock() ([]*entity.Product, error)       { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                   { return nil }
func (r *memProductRepo) Deactivate(string) error                        { return nil }

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) IncrementStock(id string, qty int64) error {
	r.s.products[id].Stock += qty
	return nil
}

func (r *memProductRepo) DecrementStock(id string, qty int64) (bool, error) {
	if r.s.loseRace {
		return false, nil
	}
	p := r.s.products[id]
	if p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *memProductRepo) SetStock(id string, qty int64) error {
	r.s.products[id].Stock = qty
	return nil
}

func (r *memProductRepo) UpdateCost(id string, cost, price decimal.Decimal) error {
	p := r.s.products[id]
	p.Cost = cost
	p.Price = price
	return nil
}

func (r *memProductRepo) UpdatePricing(id string, mode string, marginPercent, price decimal.Decimal) error {
	p := r.s.products[id]
	p.PricingMode = mode
	p.MarginPercent = marginPercent
	p.Price = price
	return nil
}

type memPurchaseRepo struct{ s *memStore }

func (r *memPurchaseRepo) Create(p *entity.Purchase) error {
	r.s.purchases = append(r.s.purchases, p)
	return nil
}
func (r *memPurchaseRepo) GetByID(string) (*entity.Purchase, error) { return nil, nil }
func (r *memPurchaseRepo) List(repository.LedgerFilter) ([]*entity.Purchase, error) {
	return r.s.purchases, nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales = append(r.s.sales, sale)
	return nil
}
func (r *memSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) List(repository.LedgerFilter) ([]*entity.Sale, error) {
	return r.s.sales, nil
}

type memAdjustmentRepo struct{ s *memStore }

func (r *memAdjustmentRepo) Create(a *entity.StockAdjustment) error {
	r.s.adjustments = append(r.s.adjustments, a)
	return nil
}
func (r *memAdjustmentRepo) ListByProduct(string, int, int) ([]*entity.StockAdjustment, error) {
	return r.s.adjustments, nil
}

type memSupplierRepo struct{ s *memStore }

func (r *memSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r *memSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *memSupplierRepo) Update(*entity.Supplier) error             { return nil }
func (r *memSupplierRepo) Delete(string) error                       { return nil }

type memCustomerRepo struct{ s *memStore }

func (r *memCustomerRepo) Create(*entity.Customer) error { return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}
func (r *memCustomerRepo) GetByDocument(string) (*entity.Customer, error)  { return nil, nil }
func (r *memCustomerRepo) Search(string, int) ([]*entity.Customer, error)  { return nil, nil }
func (r *memCustomerRepo) Update(*entity.Customer) error                   { return nil }
func (r *memCustomerRepo) Delete(string) error                             { return nil }

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(
		&memProductRepo{s: r.s},
		&memPurchaseRepo{s: r.s},
		&memSaleRepo{s: r.s},
		&memAdjustmentRepo{s: r.s},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID  = "00000000-0000-0000-0000-0000000000a1"
	testSupplierID = "00000000-0000-0000-0000-0000000000b1"
	testCustomerID = "00000000-0000-0000-0000-0000000000c1"
)

func buildUseCase(t *testing.T) (*ledger.UseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.suppliers[testSupplierID] = &entity.Supplier{ID: testSupplierID, Name: "Maderas del Sur"}
	store.customers[testCustomerID] = &entity.Customer{ID: testCustomerID, Document: "30123456", Name: "Ana"}
	store.products[testProductID] = &entity.Product{
		ID:          testProductID,
		Code:        "TABNAT-0001",
		Name:        "Tabla de picar natural",
		SupplierID:  testSupplierID,
		Cost:        decimal.NewFromInt(10),
		Price:       decimal.NewFromInt(15),
		PricingMode: entity.PricingModeManual,
		Stock:       0,
		MinStock:    5,
		Active:      true,
	}
	uc := ledger.NewUseCase(
		&memTxRunner{s: store},
		&memProductRepo{s: store},
		&memSupplierRepo{s: store},
		&memCustomerRepo{s: store},
	)
	return uc, store
}

func recordPurchase(t *testing.T, uc *ledger.UseCase, qty int64, cost string) *dto.PurchaseResponse {
	t.Helper()
	out, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID:  testProductID,
		SupplierID: testSupplierID,
		Quantity:   qty,
		UnitCost:   decimal.RequireFromString(cost),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo completo compra → venta (escenario de referencia del negocio)
// ──────────────────────────────────────────────────────────────────────────────

// Compra 50 unidades a 10.00, vende 20 a 15.00: queda stock 30 y la venta
// registra ganancia 100.00 con la foto del costo.
func TestLedger_CompraYVenta_CicloCompleto(t *testing.T) {
	uc, store := buildUseCase(t)

	purchase := recordPurchase(t, uc, 50, "10.00")
	assert.True(t, purchase.Total.Equal(decimal.NewFromInt(500)),
		"total de compra: 50 * 10.00 = 500.00")
	assert.Equal(t, int64(50), store.products[testProductID].Stock)

	sale, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: testProductID,
		Quantity:  20,
		UnitPrice: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30), store.products[testProductID].Stock, "50 - 20 = 30")
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(300)), "20 * 15.00")
	assert.True(t, sale.UnitCost.Equal(decimal.NewFromInt(10)),
		"la venta guarda la foto del costo al momento de vender")
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(100)),
		"ganancia: 20 * (15.00 - 10.00) = 100.00")

	require.Len(t, store.purchases, 1)
	require.Len(t, store.sales, 1)
}

// La ganancia histórica usa el costo de la venta, no el costo actual: un cambio
// de costo posterior no la altera.
func TestLedger_FotoDeCosto_SobreviveCambioDeCosto(t *testing.T) {
	uc, store := buildUseCase(t)
	recordPurchase(t, uc, 10, "10.00")

	sale, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: testProductID,
		Quantity:  2,
		UnitPrice: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)

	_, err = uc.UpdateCost(context.Background(), testProductID, dto.UpdateCostRequest{
		Cost: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)

	assert.True(t, store.sales[0].UnitCost.Equal(decimal.NewFromInt(10)),
		"la venta ya registrada conserva el costo 10.00")
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(10)),
		"ganancia histórica: 2 * (15 - 10) = 10.00")
	assert.True(t, store.products[testProductID].Cost.Equal(decimal.RequireFromString("12.50")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_VentaSinStockSuficiente_Retorna409(t *testing.T) {
	uc, store := buildUseCase(t)
	recordPurchase(t, uc, 30, "10.00")

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: testProductID,
		Quantity:  40,
		UnitPrice: decimal.NewFromInt(15),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(30), store.products[testProductID].Stock,
		"la venta rechazada no toca el stock")
	assert.Empty(t, store.sales, "la venta rechazada no entra al ledger")
}

// Si otra transacción gana la carrera entre el chequeo de stock y el decremento,
// el decremento condicional afecta cero filas y la venta falla con conflicto
// reintentable en lugar de dejar stock negativo.
func TestLedger_VentaPierdeCarreraConcurrente_Conflicto(t *testing.T) {
	uc, store := buildUseCase(t)
	recordPurchase(t, uc, 10, "10.00")
	store.loseRace = true

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: testProductID,
		Quantity:  5,
		UnitPrice: decimal.NewFromInt(15),
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, store.sales)
}

func TestLedger_VentasConcurrentes_NuncaStockNegativo(t *testing.T) {
	uc, store := buildUseCase(t)
	recordPurchase(t, uc, 10, "10.00")

	// 8 ventas de 3 unidades contra stock 10: a lo sumo 3 pueden pasar.
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RecordSale(context.Background(), dto.RecordSaleRequest{
				ProductID: testProductID,
				Quantity:  3,
				UnitPrice: decimal.NewFromInt(15),
			})
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 3, okCount, "sólo 3 ventas de 3 unidades caben en stock 10")
	assert.Equal(t, int64(1), store.products[testProductID].Stock)
	assert.GreaterOrEqual(t, store.products[testProductID].Stock, int64(0),
		"el stock nunca queda negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones y referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_CompraCantidadCero_Validacion(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID:  testProductID,
		SupplierID: testSupplierID,
		Quantity:   0,
		UnitCost:   decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "quantity", vErr.Field)
}

func TestLedger_CompraProveedorInexistente_NotFound(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		ProductID:  testProductID,
		SupplierID: "99999999-0000-0000-0000-000000000000",
		Quantity:   5,
		UnitCost:   decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_VentaProductoInexistente_NotFound(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID: "99999999-0000-0000-0000-000000000000",
		Quantity:  1,
		UnitPrice: decimal.NewFromInt(15),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_VentaClienteInexistente_NotFound(t *testing.T) {
	uc, _ := buildUseCase(t)
	recordPurchase(t, uc, 5, "10.00")
	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		ProductID:  testProductID,
		CustomerID: "99999999-0000-0000-0000-000000000000",
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(15),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_AjusteDeInventario_FijaStockYRegistraDelta(t *testing.T) {
	uc, store := buildUseCase(t)
	recordPurchase(t, uc, 20, "10.00")

	// Conteo físico: aparecieron sólo 17 unidades.
	adj, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: testProductID,
		NewQty:    17,
		Reason:    "conteo físico",
		Note:      "3 unidades rotas",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), adj.PreviousQty)
	assert.Equal(t, int64(17), adj.NewQty)
	assert.Equal(t, int64(-3), adj.Delta)
	assert.Equal(t, int64(17), store.products[testProductID].Stock)
	require.Len(t, store.adjustments, 1)
}

func TestLedger_AjusteSinMotivo_Validacion(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: testProductID,
		NewQty:    5,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedger_AjusteNegativo_Validacion(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.AdjustStock(context.Background(), dto.AdjustStockRequest{
		ProductID: testProductID,
		NewQty:    -1,
		Reason:    "conteo",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precio: modo manual y modo margen
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_SetPricing_ModoMargen_DerivaPrecio(t *testing.T) {
	uc, store := buildUseCase(t)

	margin := decimal.NewFromInt(30)
	out, err := uc.SetPricing(context.Background(), testProductID, dto.SetPricingRequest{
		MarginPercent: &margin,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PricingModeMargin, out.PricingMode)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(13)),
		"costo 10.00 con margen 30%% → precio 13.00")
	assert.True(t, store.products[testProductID].Price.Equal(decimal.NewFromInt(13)))
}

func TestLedger_SetPricing_AmbosCampos_Validacion(t *testing.T) {
	uc, _ := buildUseCase(t)
	price := decimal.NewFromInt(20)
	margin := decimal.NewFromInt(30)
	_, err := uc.SetPricing(context.Background(), testProductID, dto.SetPricingRequest{
		Price:         &price,
		MarginPercent: &margin,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetPricing(context.Background(), testProductID, dto.SetPricingRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Bajo modo margen, cambiar el costo recalcula el precio de venta; bajo modo
// manual el precio no se mueve.
func TestLedger_UpdateCost_RecalculaSoloEnModoMargen(t *testing.T) {
	uc, store := buildUseCase(t)

	// Modo margen 30%: costo 12.00 → precio 15.60
	margin := decimal.NewFromInt(30)
	_, err := uc.SetPricing(context.Background(), testProductID, dto.SetPricingRequest{
		MarginPercent: &margin,
	})
	require.NoError(t, err)

	out, err := uc.UpdateCost(context.Background(), testProductID, dto.UpdateCostRequest{
		Cost: decimal.RequireFromString("12.00"),
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("15.60")),
		"12.00 * 1.30 = 15.60")

	// Cambiar a modo manual y volver a tocar el costo: el precio queda fijo
	manual := decimal.NewFromInt(20)
	_, err = uc.SetPricing(context.Background(), testProductID, dto.SetPricingRequest{
		Price: &manual,
	})
	require.NoError(t, err)

	out, err = uc.UpdateCost(context.Background(), testProductID, dto.UpdateCostRequest{
		Cost: decimal.RequireFromString("14.00"),
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(20)),
		"en modo manual el precio no se recalcula")
	assert.True(t, store.products[testProductID].Cost.Equal(decimal.RequireFromString("14.00")))
}
