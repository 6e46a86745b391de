package services

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal with its lines.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a page of journal headers.
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)

	// ValidateJournal checks whether a journal could be posted. It changes nothing.
	ValidateJournal(ctx context.Context, journalID string) (*domain.ValidationResult, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal starts a DRAFT journal in an open period.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)

	// AddLine appends a line to a DRAFT journal.
	AddLine(ctx context.Context, journalID string, req dto.AddJournalLineRequest, userID string) (*domain.JournalLine, error)

	// DeleteLine removes a line from a DRAFT journal.
	DeleteLine(ctx context.Context, lineID string, userID string) error

	// PostJournal validates and irreversibly posts a DRAFT journal.
	PostJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
