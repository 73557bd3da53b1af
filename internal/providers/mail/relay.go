// Package mail implements the outbound notification relay.
package mail

import (
	"fmt"

	"outreach/internal/domain"
	"outreach/internal/infra"
)

// New builds the relay selected by cfg.Transport.
func New(cfg infra.MailConfig, logger infra.Logger) (domain.Relay, error) {
	switch cfg.Transport {
	case infra.MailTransportSMTP:
		relay, err := NewSMTPRelay(SMTPOptions{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.Username,
			Password: cfg.Password,
			From:     cfg.From,
			Timeout:  cfg.SendTimeout,
		})
		if err != nil {
			return nil, err
		}
		return relay, nil
	case infra.MailTransportLog, "":
		return NewLogRelay(cfg.From, logger), nil
	default:
		return nil, fmt.Errorf("mail: unsupported transport %q", cfg.Transport)
	}
}
