package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLineRequest línea débito/crédito de un asiento manual.
type JournalLineRequest struct {
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest asiento manual. Debe venir balanceado.
type CreateJournalEntryRequest struct {
	Date        time.Time            `json:"date"`
	Description string               `json:"description"`
	Lines       []JournalLineRequest `json:"lines"`
}

// JournalLineResponse línea persistida de un asiento.
type JournalLineResponse struct {
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntryResponse asiento persistido.
type JournalEntryResponse struct {
	ID          string                `json:"id"`
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"created_at"`
}
