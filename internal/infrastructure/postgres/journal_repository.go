package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implementación del puerto JournalRepository sobre PostgreSQL (usable con pool o tx).
// Un asiento son dos tablas: journal_entries (cabecera) y journal_lines (líneas ordenadas).
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construye el adaptador de persistencia para asientos. Pasar pool o tx (Querier).
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

// Create persiste el asiento y sus líneas. Debe invocarse dentro de una tx
// junto con los incrementos de saldo: asiento sin saldos (o al revés) corrompe el libro.
func (r *JournalRepo) Create(entry *entity.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (id, organization_id, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.OrganizationID, entry.Date, entry.Description, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	lineQuery := `
		INSERT INTO journal_lines (entry_id, position, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5)`
	for i, line := range entry.Lines {
		if _, err := r.q.Exec(context.Background(), lineQuery,
			entry.ID, i, line.AccountID, line.Debit, line.Credit,
		); err != nil {
			return fmt.Errorf("insert journal line %d: %w", i, err)
		}
	}
	return nil
}

// GetByID obtiene un asiento con sus líneas.
func (r *JournalRepo) GetByID(id string) (*entity.JournalEntry, error) {
	query := `
		SELECT id, organization_id, date, description, created_at
		FROM journal_entries WHERE id = $1`
	var e entity.JournalEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.OrganizationID, &e.Date, &e.Description, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	lines, err := r.linesFor(id)
	if err != nil {
		return nil, err
	}
	e.Lines = lines
	return &e, nil
}

// ListByOrganization lista asientos de una organización con paginación, más recientes primero.
func (r *JournalRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.JournalEntry, error) {
	query := `
		SELECT id, organization_id, date, description, created_at
		FROM journal_entries WHERE organization_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.JournalEntry
	for rows.Next() {
		var e entity.JournalEntry
		if err := rows.Scan(&e.ID, &e.OrganizationID, &e.Date, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range list {
		lines, err := r.linesFor(e.ID)
		if err != nil {
			return nil, err
		}
		e.Lines = lines
	}
	return list, nil
}

func (r *JournalRepo) linesFor(entryID string) ([]entity.JournalLine, error) {
	query := `
		SELECT account_id, debit, credit
		FROM journal_lines WHERE entry_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, entryID)
	if err != nil {
		return nil, fmt.Errorf("list journal lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.JournalLine
	for rows.Next() {
		var l entity.JournalLine
		if err := rows.Scan(&l.AccountID, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("scan journal line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
