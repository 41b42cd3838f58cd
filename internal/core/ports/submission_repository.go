package ports

import (
	"context"
	"time"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

// SubmissionRepository defines persistence operations for Adahi submissions.
// Both list operations order by submission_date descending (newest first),
// backing the per-owner and per-admin views.
type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.AdahiSubmission) (*domain.AdahiSubmission, error)
	FindByID(ctx context.Context, id string) (*domain.AdahiSubmission, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.AdahiSubmission, error)
	ListAll(ctx context.Context) ([]domain.AdahiSubmission, error)

	// Replace overwrites the mutable fields of an existing submission with the
	// given document. Last write wins; no version check is performed.
	Replace(ctx context.Context, s *domain.AdahiSubmission) error

	SetEntryStatus(ctx context.Context, id string, status domain.EntryStatus) error
	SetSlaughterStatus(ctx context.Context, id string, status domain.SlaughterStatus, date *time.Time) error
	Delete(ctx context.Context, id string) error
}

// SlaughterEventRepository appends slaughter-workflow transitions to the
// audit trail.
type SlaughterEventRepository interface {
	Insert(ctx context.Context, event *domain.SlaughterEvent) error
}
