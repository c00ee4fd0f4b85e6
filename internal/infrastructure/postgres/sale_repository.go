package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus ítems. Los precios y costos de los ítems
// llegan congelados desde el caso de uso, no se recalculan aquí.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, organization_id, user_id, date, subtotal, tax, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.OrganizationID, sale.UserID, sale.Date,
		sale.Subtotal, sale.Tax, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	itemQuery := `
		INSERT INTO sale_items (sale_id, position, product_id, product_name, quantity, unit_sale_price, unit_cost_price, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, it := range sale.Items {
		if _, err := r.q.Exec(context.Background(), itemQuery,
			sale.ID, i, it.ProductID, it.ProductName, it.Quantity,
			it.UnitSalePrice, it.UnitCostPrice, it.TaxRate,
		); err != nil {
			return fmt.Errorf("insert sale item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus ítems.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, organization_id, user_id, date, subtotal, tax, total, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.OrganizationID, &s.UserID, &s.Date, &s.Subtotal, &s.Tax, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsFor(id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// ListByOrganization lista ventas de una organización con paginación, más recientes primero.
func (r *SaleRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, organization_id, user_id, date, subtotal, tax, total, created_at
		FROM sales WHERE organization_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.OrganizationID, &s.UserID, &s.Date, &s.Subtotal, &s.Tax, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.itemsFor(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *SaleRepo) itemsFor(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT product_id, product_name, quantity, unit_sale_price, unit_cost_price, tax_rate
		FROM sale_items WHERE sale_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.UnitSalePrice, &it.UnitCostPrice, &it.TaxRate); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
