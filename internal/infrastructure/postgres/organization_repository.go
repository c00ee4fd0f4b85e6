package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepo {
	return &OrganizationRepo{pool: pool}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, slug, contract_status, subscription_ends, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		org.ID, org.Name, org.Slug, org.ContractStatus, org.SubscriptionEnds,
		org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, slug, contract_status, subscription_ends, created_at, updated_at
		FROM organizations WHERE id = $1`
	var o entity.Organization
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Name, &o.Slug, &o.ContractStatus, &o.SubscriptionEnds, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization by id: %w", err)
	}
	return &o, nil
}

// GetBySlug obtiene una organización por su slug público.
func (r *OrganizationRepo) GetBySlug(slug string) (*entity.Organization, error) {
	query := `
		SELECT id, name, slug, contract_status, subscription_ends, created_at, updated_at
		FROM organizations WHERE slug = $1`
	var o entity.Organization
	err := r.pool.QueryRow(context.Background(), query, slug).Scan(
		&o.ID, &o.Name, &o.Slug, &o.ContractStatus, &o.SubscriptionEnds, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization by slug: %w", err)
	}
	return &o, nil
}

// Update actualiza una organización.
func (r *OrganizationRepo) Update(org *entity.Organization) error {
	query := `
		UPDATE organizations SET name = $2, slug = $3, contract_status = $4, subscription_ends = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		org.ID, org.Name, org.Slug, org.ContractStatus, org.SubscriptionEnds, org.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update organization: %w", err)
	}
	return nil
}

// List lista organizaciones con paginación (uso de plataforma, SuperAdmin).
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	query := `
		SELECT id, name, slug, contract_status, subscription_ends, created_at, updated_at
		FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Slug, &o.ContractStatus, &o.SubscriptionEnds, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ExpireLapsed marca como Expired los contratos Active/OnTrial cuya fecha de fin
// ya pasó. Un solo UPDATE: el barrido no debe leer-y-escribir fila por fila.
func (r *OrganizationRepo) ExpireLapsed(before time.Time) ([]string, error) {
	query := `
		UPDATE organizations SET contract_status = $1, updated_at = now()
		WHERE contract_status IN ($2, $3) AND subscription_ends < $4
		RETURNING id`
	rows, err := r.pool.Query(context.Background(), query,
		entity.ContractExpired, entity.ContractActive, entity.ContractOnTrial, before,
	)
	if err != nil {
		return nil, fmt.Errorf("expire lapsed organizations: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan expired organization id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
