package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reventa-api/internal/application/dto"
	"github.com/jhoicas/reventa-api/internal/application/ledger"
	"github.com/jhoicas/reventa-api/internal/domain/entity"
	"github.com/jhoicas/reventa-api/internal/domain/repository"
	apphttp "github.com/jhoicas/reventa-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos
//
// Embeben la interfaz y sólo implementan los métodos que el flujo bajo test
// toca; el resto no se invoca.
// ──────────────────────────────────────────────────────────────────────────────

type stubState struct {
	product   *entity.Product
	purchases []*entity.Purchase
	sales     []*entity.Sale
}

type stubProductRepo struct {
	repository.ProductRepository
	st *stubState
}

func (r *stubProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	if r.st.product == nil || r.st.product.ID != id {
		return nil, nil
	}
	cp := *r.st.product
	return &cp, nil
}

func (r *stubProductRepo) IncrementStock(_ string, qty int64) error {
	r.st.product.Stock += qty
	return nil
}

func (r *stubProductRepo) DecrementStock(_ string, qty int64) (bool, error) {
	if r.st.product.Stock < qty {
		return false, nil
	}
	r.st.product.Stock -= qty
	return true, nil
}

type stubPurchaseRepo struct {
	repository.PurchaseRepository
	st *stubState
}

func (r *stubPurchaseRepo) Create(p *entity.Purchase) error {
	r.st.purchases = append(r.st.purchases, p)
	return nil
}

func (r *stubPurchaseRepo) List(repository.LedgerFilter) ([]*entity.Purchase, error) {
	return r.st.purchases, nil
}

type stubSaleRepo struct {
	repository.SaleRepository
	st *stubState
}

func (r *stubSaleRepo) Create(s *entity.Sale) error {
	r.st.sales = append(r.st.sales, s)
	return nil
}

func (r *stubSaleRepo) List(repository.LedgerFilter) ([]*entity.Sale, error) {
	return r.st.sales, nil
}

type stubAdjustmentRepo struct {
	repository.AdjustmentRepository
}

type stubSupplierRepo struct {
	repository.SupplierRepository
	supplier *entity.Supplier
}

func (r *stubSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if r.supplier != nil && r.supplier.ID == id {
		return r.supplier, nil
	}
	return nil, nil
}

type stubCustomerRepo struct {
	repository.CustomerRepository
}

func (r *stubCustomerRepo) GetByID(string) (*entity.Customer, error) { return nil, nil }

type stubTxRunner struct {
	st *stubState
}

func (r *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	adjustmentRepo repository.AdjustmentRepository,
) error) error {
	return fn(
		&stubProductRepo{st: r.st},
		&stubPurchaseRepo{st: r.st},
		&stubSaleRepo{st: r.st},
		&stubAdjustmentRepo{},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	stubProductID  = "00000000-0000-0000-0000-0000000000a1"
	stubSupplierID = "00000000-0000-0000-0000-0000000000b1"
)

// buildTestApp arma una app Fiber con el router real y el ledger sobre fakes,
// con el producto arrancando en el stock indicado.
func buildTestApp(t *testing.T, stock int64) (*fiber.App, *stubState) {
	t.Helper()
	st := &stubState{
		product: &entity.Product{
			ID:          stubProductID,
			Code:        "TABNAT-0001",
			Name:        "Tabla de picar natural",
			Cost:        decimal.NewFromInt(10),
			Price:       decimal.NewFromInt(15),
			PricingMode: entity.PricingModeManual,
			Stock:       stock,
			Active:      true,
		},
	}
	productRepo := &stubProductRepo{st: st}
	purchaseRepo := &stubPurchaseRepo{st: st}
	saleRepo := &stubSaleRepo{st: st}
	adjustmentRepo := &stubAdjustmentRepo{}
	supplierRepo := &stubSupplierRepo{supplier: &entity.Supplier{ID: stubSupplierID, Name: "Maderas del Sur"}}

	ledgerUC := ledger.NewUseCase(&stubTxRunner{st: st}, productRepo, supplierRepo, &stubCustomerRepo{})
	historyUC := ledger.NewHistoryUseCase(purchaseRepo, saleRepo, adjustmentRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:  ledgerUC,
		HistoryUC: historyUC,
	})
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/purchases
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordPurchase_Retorna201YActualizaStock(t *testing.T) {
	app, st := buildTestApp(t, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases", fiber.Map{
		"product_id":  stubProductID,
		"supplier_id": stubSupplierID,
		"quantity":    50,
		"unit_cost":   "10.00",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.PurchaseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(50), out.Quantity)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(500)), "50 * 10.00 = 500.00")
	assert.Equal(t, int64(50), st.product.Stock)
}

func TestRecordPurchase_CantidadCero_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases", fiber.Map{
		"product_id":  stubProductID,
		"supplier_id": stubSupplierID,
		"quantity":    0,
		"unit_cost":   "10.00",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "VALIDATION", errBody.Code)
	assert.Equal(t, "quantity", errBody.Field)
}

func TestRecordPurchase_ProveedorInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases", fiber.Map{
		"product_id":  stubProductID,
		"supplier_id": "99999999-0000-0000-0000-000000000000",
		"quantity":    5,
		"unit_cost":   "10.00",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/sales
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_Retorna201ConGanancia(t *testing.T) {
	app, st := buildTestApp(t, 50)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"product_id": stubProductID,
		"quantity":   20,
		"unit_price": "15.00",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.SaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(100)),
		"ganancia: 20 * (15.00 - 10.00) = 100.00")
	assert.True(t, out.UnitCost.Equal(decimal.NewFromInt(10)),
		"la respuesta incluye la foto del costo")
	assert.Equal(t, int64(30), st.product.Stock)
}

func TestRecordSale_StockInsuficiente_Retorna409(t *testing.T) {
	app, st := buildTestApp(t, 30)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"product_id": stubProductID,
		"quantity":   40,
		"unit_price": "15.00",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)
	assert.Equal(t, int64(30), st.product.Stock, "la venta rechazada no toca el stock")
}

func TestRecordSale_ProductoInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp(t, 10)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", fiber.Map{
		"product_id": "99999999-0000-0000-0000-000000000000",
		"quantity":   1,
		"unit_price": "15.00",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecordSale_CuerpoInvalido_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados del ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestListPurchases_DevuelveLoRegistrado(t *testing.T) {
	app, _ := buildTestApp(t, 0)

	resp := doJSON(t, app, http.MethodPost, "/api/purchases", fiber.Map{
		"product_id":  stubProductID,
		"supplier_id": stubSupplierID,
		"quantity":    10,
		"unit_cost":   "8.00",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/purchases/", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.PurchaseListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(10), out.Items[0].Quantity)
}

func TestListPurchases_FechaInvalida_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t, 0)

	resp := doJSON(t, app, http.MethodGet, "/api/purchases/?from=ayer", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListAdjustments_SinProductID_Retorna400(t *testing.T) {
	app, _ := buildTestApp(t, 0)

	resp := doJSON(t, app, http.MethodGet, "/api/adjustments/", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
