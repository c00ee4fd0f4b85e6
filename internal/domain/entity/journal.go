package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine es una línea débito/crédito contra una cuenta.
// Débito y crédito son siempre no negativos; normalmente solo uno es > 0.
type JournalLine struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// JournalEntry es un asiento de partida doble: un conjunto ordenado de líneas
// cuya suma de débitos debe igualar la suma de créditos.
type JournalEntry struct {
	ID             string
	OrganizationID string
	Date           time.Time
	Description    string
	Lines          []JournalLine
	CreatedAt      time.Time
}

// IsBalanced verifica el invariante contable: suma de débitos == suma de créditos.
func (e *JournalEntry) IsBalanced() bool {
	var debits, credits decimal.Decimal
	for _, l := range e.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits.Equal(credits)
}
