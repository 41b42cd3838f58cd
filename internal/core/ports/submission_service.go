package ports

import (
	"context"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

// Actor identifies the authenticated caller of a service operation. Admin
// checks happen in the service layer so that every transport (HTTP, watch
// stream) shares one enforcement point.
type Actor struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// CreateSubmissionInput carries donor-supplied submission data. Owner
// identity, timestamp, and entry status are stamped by the service, never
// taken from the caller.
type CreateSubmissionInput struct {
	DonorName              string
	SacrificeFor           string
	Phone                  string
	WantsToAttend          bool
	WantsFromSacrifice     bool
	SacrificeWishes        string
	PaymentConfirmed       bool
	ReceiptBookNumber      string
	VoucherNumber          string
	ThroughIntermediary    bool
	IntermediaryName       string
	DistributionPreference string
}

// UpdateSubmissionInput is a partial patch applied by an administrator. Nil
// fields are left unchanged. Identifier, owner id, and owner email are not
// representable here: those fields are immutable after creation.
type UpdateSubmissionInput struct {
	DonorName              *string
	SacrificeFor           *string
	Phone                  *string
	WantsToAttend          *bool
	WantsFromSacrifice     *bool
	SacrificeWishes        *string
	PaymentConfirmed       *bool
	ReceiptBookNumber      *string
	VoucherNumber          *string
	ThroughIntermediary    *bool
	IntermediaryName       *string
	DistributionPreference *string
}

// SubmissionService defines the use-case operations over Adahi submissions.
type SubmissionService interface {
	Create(ctx context.Context, actor Actor, input CreateSubmissionInput) (*domain.AdahiSubmission, error)
	ListOwn(ctx context.Context, actor Actor) ([]domain.AdahiSubmission, error)
	// ListAll returns every submission; admin only.
	ListAll(ctx context.Context, actor Actor) ([]domain.AdahiSubmission, error)
	// Update applies a partial patch and returns the refreshed record; admin only.
	Update(ctx context.Context, actor Actor, id string, input UpdateSubmissionInput) (*domain.AdahiSubmission, error)
	// SetEntryStatus toggles the ledger entry status; admin only.
	SetEntryStatus(ctx context.Context, actor Actor, id string, status domain.EntryStatus) error
	// Delete permanently removes a submission; admin only, no soft delete.
	Delete(ctx context.Context, actor Actor, id string) error
}

// SlaughterService drives the slaughter workflow state machine.
type SlaughterService interface {
	// Transition moves a submission to the given workflow stage; admin only.
	// Reaching the notified stage enqueues a donor notification.
	Transition(ctx context.Context, actor Actor, id string, to domain.SlaughterStatus) (*domain.AdahiSubmission, error)
}
