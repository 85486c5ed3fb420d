package notify

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Notifier delivers user-facing notices. The original surface was a blocking
// in-page alert; here delivery is pluggable and a failed delivery never fails
// the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

// LogNotifier writes notices to the structured log. It is the default
// delivery channel and the test double.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, to, subject, body string) error {
	log.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("user notice")
	return nil
}
