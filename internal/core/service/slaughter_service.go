package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

// SlaughterService drives the slaughter workflow: validate the transition,
// persist the new stage, append to the audit trail, and on the notified
// stage enqueue a donor notification.
type SlaughterService struct {
	submissions ports.SubmissionRepository
	events      ports.SlaughterEventRepository
	notifier    ports.DonorNotifier
	changes     ports.ChangeNotifier
	log         zerolog.Logger
}

func NewSlaughterService(
	submissions ports.SubmissionRepository,
	events ports.SlaughterEventRepository,
	notifier ports.DonorNotifier,
	changes ports.ChangeNotifier,
	log zerolog.Logger,
) *SlaughterService {
	return &SlaughterService{
		submissions: submissions,
		events:      events,
		notifier:    notifier,
		changes:     changes,
		log:         log,
	}
}

// Transition moves a submission to the given workflow stage. Admin only.
func (s *SlaughterService) Transition(ctx context.Context, actor ports.Actor, id string, to domain.SlaughterStatus) (*domain.AdahiSubmission, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrForbidden
	}

	submission, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("slaughter transition: %w", err)
	}

	from := submission.SlaughterStatus
	if !from.CanTransitionTo(to) {
		return nil, fmt.Errorf("slaughter transition: %w (from %s to %s)", domain.ErrInvalidTransition, from, to)
	}

	now := time.Now().UTC()

	// Confirming stamps the slaughter date; the undo edge back to pending
	// clears it; other stages keep whatever is already recorded.
	date := submission.SlaughterDate
	switch to {
	case domain.SlaughterConfirmed:
		date = &now
	case domain.SlaughterPending:
		date = nil
	}

	if err := s.submissions.SetSlaughterStatus(ctx, id, to, date); err != nil {
		return nil, fmt.Errorf("slaughter transition: update status: %w", err)
	}

	// Audit insert is non-fatal; the transition itself already persisted.
	event := &domain.SlaughterEvent{
		SubmissionID: id,
		From:         from,
		To:           to,
		ActorID:      actor.UserID,
		Timestamp:    now,
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("submission_id", id).Msg("failed to insert slaughter audit event")
	}

	if to == domain.SlaughterNotified {
		s.notifier.Enqueue(ports.DonorNotification{
			SubmissionID: id,
			Email:        submission.UserEmail,
			DonorName:    submission.DonorName,
			Stage:        to,
		})
	}

	s.log.Info().
		Str("submission_id", id).
		Str("from", string(from)).
		Str("to", string(to)).
		Str("admin_id", actor.UserID).
		Msg("slaughter status updated")

	s.changes.Notify(ctx)

	submission.SlaughterStatus = to
	submission.SlaughterDate = date
	return submission, nil
}
