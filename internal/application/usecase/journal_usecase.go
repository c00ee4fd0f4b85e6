package usecase

import (
	"context"

	"github.com/vallrack/DigitalCenterTwo-sub001/internal/application/dto"
	appledger "github.com/vallrack/DigitalCenterTwo-sub001/internal/application/ledger"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/entity"
	"github.com/vallrack/DigitalCenterTwo-sub001/internal/domain/repository"
)

// JournalUseCase consulta del libro diario y asientos manuales.
type JournalUseCase struct {
	journalRepo repository.JournalRepository
	posting     *appledger.PostingUseCase
}

// NewJournalUseCase construye el caso de uso.
func NewJournalUseCase(journalRepo repository.JournalRepository, posting *appledger.PostingUseCase) *JournalUseCase {
	return &JournalUseCase{journalRepo: journalRepo, posting: posting}
}

// CreateManualEntry registra un asiento manual por la misma ruta atómica que
// usa la contabilización de ventas.
func (uc *JournalUseCase) CreateManualEntry(ctx context.Context, organizationID string, in dto.CreateJournalEntryRequest) (*dto.JournalEntryResponse, error) {
	lines := make([]entity.JournalLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.AccountID == "" {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.JournalLine{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		})
	}
	entry, err := uc.posting.PostManualEntry(ctx, organizationID, in.Description, in.Date, lines)
	if err != nil {
		return nil, err
	}
	return toJournalResponse(entry), nil
}

// List devuelve los asientos de la organización.
func (uc *JournalUseCase) List(organizationID string, page dto.PageRequest) ([]*dto.JournalEntryResponse, error) {
	page.DefaultPage()
	entries, err := uc.journalRepo.ListByOrganization(organizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toJournalResponse(e))
	}
	return out, nil
}

func toJournalResponse(e *entity.JournalEntry) *dto.JournalEntryResponse {
	lines := make([]dto.JournalLineResponse, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, dto.JournalLineResponse{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		})
	}
	return &dto.JournalEntryResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Lines:       lines,
		CreatedAt:   e.CreatedAt,
	}
}
