package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta del plan contable.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, organization_id, code, name, type, balance, is_parent, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.OrganizationID, account.Code, account.Name, account.Type,
		account.Balance, account.IsParent, account.ParentID, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, organization_id, code, name, type, balance, is_parent, COALESCE(parent_id::text, ''), created_at, updated_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.OrganizationID, &a.Code, &a.Name, &a.Type, &a.Balance,
		&a.IsParent, &a.ParentID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return &a, nil
}

// ListByOrganization lista el plan de cuentas completo de una organización ordenado por código.
func (r *AccountRepo) ListByOrganization(organizationID string) ([]*entity.Account, error) {
	query := `
		SELECT id, organization_id, code, name, type, balance, is_parent, COALESCE(parent_id::text, ''), created_at, updated_at
		FROM accounts WHERE organization_id = $1 ORDER BY code`
	rows, err := r.q.Query(context.Background(), query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Code, &a.Name, &a.Type, &a.Balance,
			&a.IsParent, &a.ParentID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza código, nombre y tipo de una cuenta. El saldo solo cambia vía AddToBalance.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET code = $2, name = $3, type = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Code, account.Name, account.Type, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// HasChildren indica si la cuenta tiene subcuentas.
func (r *AccountRepo) HasChildren(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE parent_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check account children: %w", err)
	}
	return exists, nil
}

// HasMovements indica si la cuenta tiene líneas de asiento registradas.
func (r *AccountRepo) HasMovements(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM journal_lines WHERE account_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check account movements: %w", err)
	}
	return exists, nil
}

// AddToBalance aplica un incremento atómico al saldo. El cálculo ocurre en la
// base de datos para que ventas concurrentes no pierdan actualizaciones.
func (r *AccountRepo) AddToBalance(id string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET balance = balance + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("add to account balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
