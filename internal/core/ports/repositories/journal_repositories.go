package repositories

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
)

// JournalFilter narrows a journal listing. Nil fields are not applied.
type JournalFilter struct {
	PeriodID  *string
	Status    *domain.JournalStatus
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
	NextToken *string
}

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal header without its lines.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals returns one page of journals ordered by transaction date then creation time,
	// newest first, and a token for the next page.
	ListJournals(ctx context.Context, filter JournalFilter) ([]domain.Journal, *string, error)

	// CountJournalsByPeriodAndStatus counts journals in a period with the given status.
	CountJournalsByPeriodAndStatus(ctx context.Context, periodID string, status domain.JournalStatus) (int, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// FindJournalByIDForUpdate retrieves a journal header and locks its row.
	FindJournalByIDForUpdate(ctx context.Context, journalID string) (*domain.Journal, error)

	// MarkJournalPosted moves a journal to POSTED.
	MarkJournalPosted(ctx context.Context, journalID string, userID string, now time.Time) error
}

// JournalLineReader defines read operations for journal lines
type JournalLineReader interface {
	FindJournalLineByID(ctx context.Context, lineID string) (*domain.JournalLine, error)

	// FindJournalLinesByJournalID returns the lines of a journal ordered by line number.
	FindJournalLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)

	// NextLineNumber returns one more than the highest line number of the journal.
	NextLineNumber(ctx context.Context, journalID string) (int, error)
}

// JournalLineWriter defines write operations for journal lines
type JournalLineWriter interface {
	SaveJournalLine(ctx context.Context, line domain.JournalLine) error
	DeleteJournalLine(ctx context.Context, lineID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	JournalLineReader
	JournalLineWriter
}
