package ports

import (
	"context"

	"github.com/sanabel-org/adahi-api/internal/core/domain"
)

// DonorNotification is the job handed to the notification workers when a
// submission reaches a stage the donor should hear about.
type DonorNotification struct {
	SubmissionID string
	Email        string
	DonorName    string
	Stage        domain.SlaughterStatus
}

// DonorNotifier enqueues donor notifications for asynchronous delivery.
type DonorNotifier interface {
	Enqueue(n DonorNotification)
}

// ChangeNotifier signals that the submissions collection changed so that
// watch subscribers can be pushed a fresh result set.
type ChangeNotifier interface {
	Notify(ctx context.Context)
}
