package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
	"github.com/vallrack/DigitalCenterTwo-sub001/pkg/logger"
)

// CreateSaleUseCase cierra ventas del POS: descuenta stock y persiste la venta
// en una transacción, y después contabiliza. La contabilización nunca revierte
// ni bloquea una venta ya confirmada.
type CreateSaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	poster      Poster
	log         *logger.Logger
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	poster Poster,
	log *logger.Logger,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		poster:      poster,
		log:         log,
	}
}

// CreateSale valida las líneas contra el catálogo, calcula totales
// (Total = Subtotal + Tax por construcción), descuenta stock y persiste la
// venta de forma atómica. Al confirmar, dispara la contabilización: si esta
// falla se registra para conciliación manual y el cajero igual ve la venta
// como exitosa.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, organizationID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validar productos y congelar precios/costos (fuera de la tx, solo lectura).
	now := time.Now()
	items := make([]entity.SaleItem, 0, len(in.Items))
	var subtotal, tax decimal.Decimal
	for _, line := range in.Items {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.OrganizationID != organizationID {
			return nil, domain.ErrForbidden
		}
		unitPrice := line.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.SalePrice
		}
		if unitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}

		lineNet := unitPrice.Mul(line.Quantity)
		subtotal = subtotal.Add(lineNet)
		tax = tax.Add(lineNet.Mul(product.TaxRate))

		items = append(items, entity.SaleItem{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      line.Quantity,
			UnitSalePrice: unitPrice,
			UnitCostPrice: product.CostPrice,
			TaxRate:       product.TaxRate,
		})
	}

	sale := &entity.Sale{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		UserID:         userID,
		Date:           now,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          subtotal.Add(tax),
		Items:          items,
		CreatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, item := range sale.Items {
			if err := productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	// Venta confirmada. El asiento contable corre aparte: su fallo se registra
	// y queda para conciliación manual.
	if err := uc.poster.PostSale(ctx, sale); err != nil {
		uc.log.Warn().Err(err).
			Str("sale_id", sale.ID).
			Msg("venta confirmada sin asiento contable")
	}

	return toSaleResponse(sale), nil
}

// GetSale devuelve una venta de la organización.
func (uc *CreateSaleUseCase) GetSale(organizationID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// ListSales lista las ventas de la organización.
func (uc *CreateSaleUseCase) ListSales(organizationID string, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	ventas, err := uc.saleRepo.ListByOrganization(organizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(ventas))
	for _, s := range ventas {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			Quantity:      it.Quantity,
			UnitSalePrice: it.UnitSalePrice,
			UnitCostPrice: it.UnitCostPrice,
		})
	}
	return &dto.SaleResponse{
		ID:       s.ID,
		Date:     s.Date,
		Subtotal: s.Subtotal,
		Tax:      s.Tax,
		Total:    s.Total,
		Items:    items,
	}
}
