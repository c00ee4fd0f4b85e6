package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/sales"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
	"github.com/vallrack/DigitalCenterTwo-sub001/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) DecrementStock(id string, qty decimal.Decimal) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	p.Stock = p.Stock.Sub(qty)
	return nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	f.sales[s.ID] = s
	return nil
}
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return f.sales[id], nil }
func (f *fakeSaleRepo) ListByOrganization(orgID string, limit, offset int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

// fakeSaleTx restaura stock y ventas si el callback falla (rollback).
type fakeSaleTx struct {
	sales    *fakeSaleRepo
	products *fakeProductRepo
}

func (f *fakeSaleTx) Run(ctx context.Context, fn func(
	repository.SaleRepository, repository.ProductRepository,
) error) error {
	stocks := make(map[string]decimal.Decimal, len(f.products.products))
	for id, p := range f.products.products {
		stocks[id] = p.Stock
	}
	salesBefore := len(f.sales.sales)

	if err := fn(f.sales, f.products); err != nil {
		for id, st := range stocks {
			f.products.products[id].Stock = st
		}
		if len(f.sales.sales) != salesBefore {
			for id := range f.sales.sales {
				delete(f.sales.sales, id)
			}
		}
		return err
	}
	return nil
}

// fakePoster registra las ventas contabilizadas y puede simular fallo.
type fakePoster struct {
	posted []*entity.Sale
	err    error
}

func (f *fakePoster) PostSale(ctx context.Context, sale *entity.Sale) error {
	if f.err != nil {
		return f.err
	}
	f.posted = append(f.posted, sale)
	return nil
}

func fixture() (*fakeProductRepo, *fakeSaleRepo, *fakePoster, *sales.CreateSaleUseCase) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {
			ID: "p1", OrganizationID: "org-1", Name: "Café 500g",
			SalePrice: decimal.NewFromInt(50), CostPrice: decimal.NewFromInt(30),
			TaxRate: decimal.RequireFromString("0.19"), Stock: decimal.NewFromInt(10),
		},
	}}
	saleRepo := &fakeSaleRepo{sales: map[string]*entity.Sale{}}
	poster := &fakePoster{}
	uc := sales.NewCreateSaleUseCase(
		&fakeSaleTx{sales: saleRepo, products: products},
		products, saleRepo, poster, logger.Nop(),
	)
	return products, saleRepo, poster, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_CalculaTotalesYDescuentaStock(t *testing.T) {
	products, _, poster, uc := fixture()

	resp, err := uc.CreateSale(context.Background(), "org-1", "uid-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	// 2 × 50 = 100 de subtotal, IVA 19% = 19, total 119.
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Tax.Equal(decimal.NewFromInt(19)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(119)))
	assert.True(t, resp.Total.Equal(resp.Subtotal.Add(resp.Tax)), "Total = Subtotal + Tax siempre")

	// El costo se congela desde el producto.
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitCostPrice.Equal(decimal.NewFromInt(30)))

	assert.True(t, products.products["p1"].Stock.Equal(decimal.NewFromInt(8)))
	require.Len(t, poster.posted, 1, "la venta confirmada se contabiliza")
}

func TestCreateSale_StockInsuficiente_RevierteTodo(t *testing.T) {
	products, saleRepo, poster, uc := fixture()

	_, err := uc.CreateSale(context.Background(), "org-1", "uid-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(99)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, products.products["p1"].Stock.Equal(decimal.NewFromInt(10)), "stock intacto tras rollback")
	assert.Empty(t, saleRepo.sales)
	assert.Empty(t, poster.posted, "nada que contabilizar si la venta no se confirmó")
}

func TestCreateSale_FalloContable_NoAfectaLaVenta(t *testing.T) {
	_, saleRepo, poster, uc := fixture()
	poster.err = errors.New("configuración contable rota")

	resp, err := uc.CreateSale(context.Background(), "org-1", "uid-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err, "el cajero siempre ve la venta como exitosa una vez confirmada")
	assert.NotNil(t, resp)
	assert.Len(t, saleRepo.sales, 1, "la venta queda persistida aunque el asiento falle")
}

func TestCreateSale_ProductoDeOtraOrganizacion_Rechaza(t *testing.T) {
	products, _, _, uc := fixture()
	products.products["p1"].OrganizationID = "org-ajena"

	_, err := uc.CreateSale(context.Background(), "org-1", "uid-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateSale_ValidaEntrada(t *testing.T) {
	_, _, _, uc := fixture()

	_, err := uc.CreateSale(context.Background(), "org-1", "uid-1", dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin líneas no hay venta")

	_, err = uc.CreateSale(context.Background(), "org-1", "uid-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: "p1", Quantity: decimal.Zero},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad debe ser positiva")
}

func TestCreateSale_PrecioExplicitoReemplazaListaPrecios(t *testing.T) {
	_, _, _, uc := fixture()

	resp, err := uc.CreateSale(context.Background(), "org-1", "uid-1", dto.CreateSaleRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(40)), "precio negociado en el POS")
}
