package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

// LogSender is the default Sender: it records the notification in the
// structured log. Production deployments swap in an SMS or mail sender
// behind the same interface.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, n ports.DonorNotification) error {
	s.log.Info().
		Str("submission_id", n.SubmissionID).
		Str("email", n.Email).
		Str("donor_name", n.DonorName).
		Str("stage", string(n.Stage)).
		Msg("notification dispatched")
	return nil
}
