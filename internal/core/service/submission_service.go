package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

// SubmissionService implements the submission use cases. Every mutation ends
// by signalling the change notifier so watch subscribers receive a fresh
// result set.
type SubmissionService struct {
	repo    ports.SubmissionRepository
	changes ports.ChangeNotifier
	logger  zerolog.Logger
}

func NewSubmissionService(repo ports.SubmissionRepository, changes ports.ChangeNotifier, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, changes: changes, logger: logger}
}

// Create records a new submission for the acting donor. Owner identity,
// server timestamp, entry status, and the slaughter stage are stamped here;
// the caller cannot supply them.
func (s *SubmissionService) Create(ctx context.Context, actor ports.Actor, input ports.CreateSubmissionInput) (*domain.AdahiSubmission, error) {
	if actor.UserID == "" {
		return nil, domain.ErrForbidden
	}

	pref := domain.DistributionPreference(input.DistributionPreference)
	if !pref.Valid() {
		return nil, fmt.Errorf("create submission: invalid distribution preference %q", input.DistributionPreference)
	}

	submission := &domain.AdahiSubmission{
		UserID:                 actor.UserID,
		UserEmail:              actor.Email,
		DonorName:              input.DonorName,
		SacrificeFor:           input.SacrificeFor,
		Phone:                  input.Phone,
		WantsToAttend:          input.WantsToAttend,
		WantsFromSacrifice:     input.WantsFromSacrifice,
		SacrificeWishes:        input.SacrificeWishes,
		PaymentConfirmed:       input.PaymentConfirmed,
		ReceiptBookNumber:      input.ReceiptBookNumber,
		VoucherNumber:          input.VoucherNumber,
		ThroughIntermediary:    input.ThroughIntermediary,
		IntermediaryName:       input.IntermediaryName,
		DistributionPreference: pref,
		SubmissionDate:         time.Now().UTC(),
		Status:                 domain.EntryPending,
		SlaughterStatus:        domain.SlaughterPending,
	}

	if err := submission.ValidateConditionals(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, submission)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", actor.UserID).Msg("failed to create submission")
		return nil, err
	}

	s.logger.Info().
		Str("submission_id", created.ID).
		Str("user_id", actor.UserID).
		Str("preference", string(created.DistributionPreference)).
		Msg("submission created")

	s.changes.Notify(ctx)
	return created, nil
}

// ListOwn returns the acting donor's submissions, newest first.
func (s *SubmissionService) ListOwn(ctx context.Context, actor ports.Actor) ([]domain.AdahiSubmission, error) {
	if actor.UserID == "" {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByOwner(ctx, actor.UserID)
}

// ListAll returns every submission, newest first. Admin only.
func (s *SubmissionService) ListAll(ctx context.Context, actor ports.Actor) ([]domain.AdahiSubmission, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListAll(ctx)
}

// Update applies a partial patch to an existing submission. The identifier,
// owner id, and owner email survive untouched: the patch type cannot express
// them and the merge below never copies them. The merged document is
// re-validated against the conditional invariants before the write.
func (s *SubmissionService) Update(ctx context.Context, actor ports.Actor, id string, input ports.UpdateSubmissionInput) (*domain.AdahiSubmission, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	applyPatch(&merged, input)

	if !merged.DistributionPreference.Valid() {
		return nil, fmt.Errorf("update submission: invalid distribution preference %q", merged.DistributionPreference)
	}
	if err := merged.ValidateConditionals(); err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, &merged); err != nil {
		s.logger.Error().Err(err).Str("submission_id", id).Msg("failed to update submission")
		return nil, err
	}

	s.logger.Info().Str("submission_id", id).Str("admin_id", actor.UserID).Msg("submission updated")
	s.changes.Notify(ctx)

	return s.repo.FindByID(ctx, id)
}

// SetEntryStatus toggles the ledger entry status. Admin only.
func (s *SubmissionService) SetEntryStatus(ctx context.Context, actor ports.Actor, id string, status domain.EntryStatus) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}
	if !status.Valid() {
		return domain.ErrInvalidEntryStatus
	}

	if err := s.repo.SetEntryStatus(ctx, id, status); err != nil {
		s.logger.Error().Err(err).Str("submission_id", id).Msg("failed to set entry status")
		return err
	}

	s.logger.Info().
		Str("submission_id", id).
		Str("status", string(status)).
		Str("admin_id", actor.UserID).
		Msg("entry status updated")

	s.changes.Notify(ctx)
	return nil
}

// Delete permanently removes a submission. Admin only; no undo.
func (s *SubmissionService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if !actor.IsAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("submission_id", id).Msg("failed to delete submission")
		return err
	}

	s.logger.Info().Str("submission_id", id).Str("admin_id", actor.UserID).Msg("submission deleted")
	s.changes.Notify(ctx)
	return nil
}

func applyPatch(dst *domain.AdahiSubmission, in ports.UpdateSubmissionInput) {
	if in.DonorName != nil {
		dst.DonorName = *in.DonorName
	}
	if in.SacrificeFor != nil {
		dst.SacrificeFor = *in.SacrificeFor
	}
	if in.Phone != nil {
		dst.Phone = *in.Phone
	}
	if in.WantsToAttend != nil {
		dst.WantsToAttend = *in.WantsToAttend
	}
	if in.WantsFromSacrifice != nil {
		dst.WantsFromSacrifice = *in.WantsFromSacrifice
	}
	if in.SacrificeWishes != nil {
		dst.SacrificeWishes = *in.SacrificeWishes
	}
	if in.PaymentConfirmed != nil {
		dst.PaymentConfirmed = *in.PaymentConfirmed
	}
	if in.ReceiptBookNumber != nil {
		dst.ReceiptBookNumber = *in.ReceiptBookNumber
	}
	if in.VoucherNumber != nil {
		dst.VoucherNumber = *in.VoucherNumber
	}
	if in.ThroughIntermediary != nil {
		dst.ThroughIntermediary = *in.ThroughIntermediary
	}
	if in.IntermediaryName != nil {
		dst.IntermediaryName = *in.IntermediaryName
	}
	if in.DistributionPreference != nil {
		dst.DistributionPreference = domain.DistributionPreference(*in.DistributionPreference)
	}
}
