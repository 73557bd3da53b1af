package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"outreach/internal/domain"
)

// ErrNoRecipients is returned by InviteRegistered when nobody is registered.
var ErrNoRecipients = errors.New("no registered recipients")

// genericSendError is reported per recipient; the underlying cause is only logged.
const genericSendError = "failed to send email"

// RecipientError attributes a failed send to its recipient.
type RecipientError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// Result aggregates a broadcast. Errors are listed in recipient order.
type Result struct {
	Sent   int              `json:"sent"`
	Failed int              `json:"failed"`
	Errors []RecipientError `json:"errors"`
}

// Broadcaster sends one message per recipient through a relay.
type Broadcaster struct {
	Relay       domain.Relay
	Concurrency int
	Logger      zerolog.Logger
}

// Send attempts every recipient regardless of earlier failures. With
// Concurrency <= 1 sends are strictly sequential in recipient order; higher
// values bound the number of in-flight sends while keeping per-recipient
// accounting identical.
func (b Broadcaster) Send(ctx context.Context, recipients []string, build func(to string) domain.Message) Result {
	outcomes := make([]error, len(recipients))

	if b.Concurrency <= 1 {
		for i, to := range recipients {
			outcomes[i] = b.Relay.Send(ctx, build(to))
		}
	} else {
		var g errgroup.Group
		g.SetLimit(b.Concurrency)
		for i, to := range recipients {
			g.Go(func() error {
				outcomes[i] = b.Relay.Send(ctx, build(to))
				return nil
			})
		}
		_ = g.Wait()
	}

	res := Result{Errors: []RecipientError{}}
	for i, err := range outcomes {
		if err == nil {
			res.Sent++
			continue
		}
		res.Failed++
		b.Logger.Warn().Err(err).Str("recipient", recipients[i]).Msg("broadcast send failed")
		res.Errors = append(res.Errors, RecipientError{Email: recipients[i], Error: genericSendError})
	}
	return res
}

// InviteRegistered sends the live-session invite to every registered email in
// registration order.
func (b Broadcaster) InviteRegistered(ctx context.Context, repo domain.LiveSessionRepository, tpl Templates, session LiveSession) (Result, error) {
	emails, err := repo.ListEmails(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch registered emails: %w", err)
	}
	if len(emails) == 0 {
		return Result{}, ErrNoRecipients
	}
	return b.Send(ctx, emails, func(to string) domain.Message {
		return tpl.LiveSessionInvite(session, to)
	}), nil
}

// Summary is the human-readable outcome of a broadcast.
func Summary(res Result) string {
	return fmt.Sprintf("Emails sent: %d, failed: %d", res.Sent, res.Failed)
}
