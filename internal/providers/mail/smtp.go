package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"outreach/internal/domain"
)

// ErrMissingCredentials indicates that the SMTP relay was configured without a login.
var ErrMissingCredentials = errors.New("mail: smtp username and password are required")

const defaultSendTimeout = 30 * time.Second

// SMTPOptions configures the SMTP relay.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPRelay sends each message over a fresh authenticated SMTP session.
type SMTPRelay struct {
	opts SMTPOptions
}

// NewSMTPRelay validates the options and returns a relay.
func NewSMTPRelay(opts SMTPOptions) (*SMTPRelay, error) {
	if opts.Username == "" || opts.Password == "" {
		return nil, ErrMissingCredentials
	}
	if opts.Host == "" {
		return nil, errors.New("mail: smtp host is required")
	}
	if opts.Port == 0 {
		opts.Port = 587
	}
	if opts.From == "" {
		opts.From = opts.Username
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultSendTimeout
	}
	return &SMTPRelay{opts: opts}, nil
}

// Send delivers msg once. The configured timeout bounds dialing and the whole exchange.
func (r *SMTPRelay) Send(ctx context.Context, msg domain.Message) error {
	m, err := buildMsg(r.opts.From, msg)
	if err != nil {
		return err
	}

	clientOpts := []gomail.Option{
		gomail.WithPort(r.opts.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(r.opts.Username),
		gomail.WithPassword(r.opts.Password),
		gomail.WithTimeout(r.opts.Timeout),
	}
	if r.opts.Port == 465 {
		clientOpts = append(clientOpts, gomail.WithSSL())
	} else {
		clientOpts = append(clientOpts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	client, err := gomail.NewClient(r.opts.Host, clientOpts...)
	if err != nil {
		return fmt.Errorf("mail: new client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRelayFailure, err)
	}
	return nil
}

func buildMsg(defaultFrom string, msg domain.Message) (*gomail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("mail: at least one recipient is required")
	}
	from := msg.From
	if from == "" {
		from = defaultFrom
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("mail: invalid sender %q: %w", from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("mail: invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	for _, a := range msg.Attachments {
		var fileOpts []gomail.FileOption
		if a.ContentType != "" {
			fileOpts = append(fileOpts, gomail.WithFileContentType(gomail.ContentType(a.ContentType)))
		}
		if err := m.AttachReader(a.Filename, bytes.NewReader(a.Data), fileOpts...); err != nil {
			return nil, fmt.Errorf("mail: attach %q: %w", a.Filename, err)
		}
	}
	return m, nil
}
