package ventas_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestionpyme/erp-api/internal/application/dto"
	"github.com/gestionpyme/erp-api/internal/application/ventas"
	"github.com/gestionpyme/erp-api/internal/domain"
	"github.com/gestionpyme/erp-api/internal/domain/entity"
	"github.com/gestionpyme/erp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El TxRunner de test no transacciona: entrega los repos
// directamente, suficiente para verificar la lógica del checkout.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	saleRepo  repository.SaleRepository
	stockRepo repository.StockRepository
}

func (f *fakeTxRunner) RunVenta(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
) error) error {
	return fn(f.saleRepo, f.stockRepo)
}

type fakeSaleRepo struct {
	folio int
	sales []*entity.Sale
	items []*entity.SaleItem
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error             { f.sales = append(f.sales, s); return nil }
func (f *fakeSaleRepo) CreateItem(item *entity.SaleItem) error  { f.items = append(f.items, item); return nil }
func (f *fakeSaleRepo) GetByID(string) (*entity.Sale, error)    { return nil, nil }
func (f *fakeSaleRepo) GetItemsBySaleID(string) ([]*entity.SaleItem, error) { return nil, nil }
func (f *fakeSaleRepo) ListByWarehouse(string, int, int) ([]*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) ListByClient(string) ([]*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) DeleteItemsBySaleID(string) error        { return nil }
func (f *fakeSaleRepo) Delete(string) error                     { return nil }

func (f *fakeSaleRepo) NextReceiptNumber(string) (string, error) {
	f.folio++
	return fmt.Sprintf("%06d", f.folio), nil
}

type fakeStockRepo struct {
	stock       map[string]decimal.Decimal // productID -> existencia
	decrementos map[string]decimal.Decimal // productID -> cantidad descontada
}

func (f *fakeStockRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.ProductStock, error) {
	return &entity.ProductStock{ProductID: productID, WarehouseID: warehouseID, Quantity: f.stock[productID]}, nil
}

func (f *fakeStockRepo) ListByProduct(string) ([]*entity.ProductStock, error) { return nil, nil }

func (f *fakeStockRepo) Decrement(productID, _ string, qty decimal.Decimal) error {
	if f.stock[productID].LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	f.stock[productID] = f.stock[productID].Sub(qty)
	f.decrementos[productID] = f.decrementos[productID].Add(qty)
	return nil
}

func (f *fakeStockRepo) Increment(productID, _ string, qty decimal.Decimal) error {
	f.stock[productID] = f.stock[productID].Add(qty)
	return nil
}

type fakeProductRepo struct{ productos map[string]*entity.Product }

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return f.productos[id], nil }
func (f *fakeProductRepo) GetByWarehouseAndSKU(string, string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListActiveByWarehouse(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) Deactivate(string) error      { return nil }

type fakeServiceRepo struct{ servicios map[string]*entity.Service }

func (f *fakeServiceRepo) Create(*entity.Service) error { return nil }
func (f *fakeServiceRepo) GetByID(id string) (*entity.Service, error) { return f.servicios[id], nil }
func (f *fakeServiceRepo) ListActiveByWarehouse(string) ([]*entity.Service, error) { return nil, nil }
func (f *fakeServiceRepo) Deactivate(string) error { return nil }

type fakeClientRepo struct{ clientes map[string]*entity.Client }

func (f *fakeClientRepo) Create(*entity.Client) error { return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) { return f.clientes[id], nil }
func (f *fakeClientRepo) ListByWarehouse(string, int, int) ([]*entity.Client, error) { return nil, nil }
func (f *fakeClientRepo) Update(*entity.Client) error { return nil }
func (f *fakeClientRepo) Delete(string) error         { return nil }

// ── Fixture ───────────────────────────────────────────────────────────────────

const (
	testWarehouse = "wh-1"
	testUser      = "user-1"
	testProductID = "prod-1"
	testServiceID = "serv-1"
	testClientID  = "cli-1"
)

type fixture struct {
	uc        *ventas.CreateSaleUseCase
	saleRepo  *fakeSaleRepo
	stockRepo *fakeStockRepo
}

func newFixture() *fixture {
	saleRepo := &fakeSaleRepo{}
	stockRepo := &fakeStockRepo{
		stock:       map[string]decimal.Decimal{testProductID: decimal.NewFromInt(10)},
		decrementos: map[string]decimal.Decimal{},
	}
	productRepo := &fakeProductRepo{productos: map[string]*entity.Product{
		testProductID: {
			ID: testProductID, WarehouseID: testWarehouse, SKU: "CEM-25",
			Name: "Cemento 25kg", Price: decimal.NewFromInt(5_990), Active: true,
		},
	}}
	serviceRepo := &fakeServiceRepo{servicios: map[string]*entity.Service{
		testServiceID: {
			ID: testServiceID, WarehouseID: testWarehouse,
			Name: "Instalación", Price: decimal.NewFromInt(30_000), Active: true,
		},
	}}
	clientRepo := &fakeClientRepo{clientes: map[string]*entity.Client{
		testClientID: {
			ID: testClientID, WarehouseID: testWarehouse,
			Name: "Constructora Andes Ltda.", TaxID: "76.111.222-3",
			Address: "Camino Real 45", Phone: "+56 9 8765 4321",
		},
	}}

	txRunner := &fakeTxRunner{saleRepo: saleRepo, stockRepo: stockRepo}
	return &fixture{
		uc:        ventas.NewCreateSaleUseCase(txRunner, productRepo, serviceRepo, clientRepo),
		saleRepo:  saleRepo,
		stockRepo: stockRepo,
	}
}

func ptr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de emisión
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_FacturaSinClienteRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:  "factura",
		Items: []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(1)}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la factura exige cliente registrado: el RUT va en el documento tributario")
}

func TestCreateSale_TipoDesconocidoRechazado(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:  "nota_venta",
		Items: []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(1)}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_SinItemsRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type: "boleta",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_BoletaDescuentaStockYAsignaFolio(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:  "boleta",
		Items: []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(3)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "000001", resp.ReceiptNumber, "el folio viene del correlativo de la bodega")
	assert.True(t, f.stockRepo.decrementos[testProductID].Equal(decimal.NewFromInt(3)),
		"la boleta descuenta el stock vendido")

	// boleta: total directo, sin desglose tributario
	total := decimal.NewFromInt(3 * 5_990)
	assert.True(t, resp.TotalAmount.Equal(total))
	assert.True(t, resp.NetAmount.Equal(total), "la boleta guarda el total como neto")
	assert.True(t, resp.TaxAmount.IsZero())
}

func TestCreateSale_FacturaDesglosaIVAYCongelaSnapshot(t *testing.T) {
	f := newFixture()

	// 2 unidades a 5990 -> total 11980; neto = round(11980/1.19) = 10067, iva = 1913
	resp, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:     "factura",
		ClientID: ptr(testClientID),
		Items:    []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(2)}},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(11_980)))
	assert.True(t, resp.NetAmount.Equal(decimal.NewFromInt(10_067)), "neto: %s", resp.NetAmount)
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(1_913)), "iva: %s", resp.TaxAmount)
	assert.True(t, resp.NetAmount.Add(resp.TaxAmount).Equal(resp.TotalAmount),
		"neto + iva debe cuadrar contra el total")

	require.Len(t, f.saleRepo.sales, 1)
	snapshot := f.saleRepo.sales[0].ClientSnapshot
	require.NotNil(t, snapshot, "la factura congela el snapshot del cliente")
	assert.Equal(t, "Constructora Andes Ltda.", snapshot.Name)
	assert.Equal(t, "76.111.222-3", snapshot.TaxID)
}

func TestCreateSale_CotizacionNoDescuentaStock(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:              "cotizacion",
		QuoteNumberManual: "C-778",
		Items:             []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(5)}},
	})
	require.NoError(t, err)

	assert.Empty(t, f.stockRepo.decrementos,
		"la cotización es una promesa, no un movimiento de stock")
	assert.Equal(t, "C-778", resp.QuoteNumberManual, "la cotización conserva el folio manual")
	assert.True(t, f.stockRepo.stock[testProductID].Equal(decimal.NewFromInt(10)),
		"la existencia queda intacta")
}

func TestCreateSale_FolioManualIgnoradoFueraDeCotizacion(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:              "boleta",
		QuoteNumberManual: "C-778",
		Items:             []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	assert.Empty(t, resp.QuoteNumberManual, "el folio manual solo aplica a cotizaciones")
}

func TestCreateSale_ServicioNoDescuentaStock(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:  "boleta",
		Items: []dto.SaleItemRequest{{ServiceID: ptr(testServiceID), Quantity: decimal.NewFromInt(2)}},
	})
	require.NoError(t, err)

	assert.Empty(t, f.stockRepo.decrementos, "los servicios no tienen existencias")
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(60_000)))
}

func TestCreateSale_StockInsuficienteAbortaCheckout(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:  "boleta",
		Items: []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(99)}},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreateSale_LineaConProductoYServicioRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type: "boleta",
		Items: []dto.SaleItemRequest{{
			ProductID: ptr(testProductID),
			ServiceID: ptr(testServiceID),
			Quantity:  decimal.NewFromInt(1),
		}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cada línea es producto o servicio, no ambos")
}

func TestCreateSale_CantidadCeroRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
		Type:  "boleta",
		Items: []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.Zero}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ProductoDeOtraBodegaRechazado(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), "otra-bodega", testUser, dto.CreateSaleRequest{
		Type:  "boleta",
		Items: []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(1)}},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden, "el scoping por bodega aplica también en el checkout")
}

func TestCreateSale_FolioCorrelativoAvanza(t *testing.T) {
	f := newFixture()

	for i, esperado := range []string{"000001", "000002", "000003"} {
		resp, err := f.uc.CreateSale(context.Background(), testWarehouse, testUser, dto.CreateSaleRequest{
			Type:  "boleta",
			Items: []dto.SaleItemRequest{{ProductID: ptr(testProductID), Quantity: decimal.NewFromInt(1)}},
		})
		require.NoError(t, err, "venta %d", i+1)
		assert.Equal(t, esperado, resp.ReceiptNumber)
	}
}
