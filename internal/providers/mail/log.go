package mail

import (
	"context"

	"outreach/internal/domain"
	"outreach/internal/infra"
)

// LogRelay records messages in the log instead of sending them. It is the
// development transport and always succeeds.
type LogRelay struct {
	from   string
	logger infra.Logger
}

func NewLogRelay(from string, logger infra.Logger) *LogRelay {
	return &LogRelay{from: from, logger: logger}
}

func (r *LogRelay) Send(ctx context.Context, msg domain.Message) error {
	from := msg.From
	if from == "" {
		from = r.from
	}
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Filename)
	}
	r.logger.Info().
		Str("from", from).
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Strs("attachments", names).
		Int("body_bytes", len(msg.Body)).
		Msg("mail relay (log transport)")
	return nil
}
