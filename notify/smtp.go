package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the settings of the outbound mail server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      string        // none, opportunistic or mandatory
	Timeout  time.Duration // Bounds a single dial and send.
}

// SMTPMailer delivers messages through an SMTP server.
type SMTPMailer struct {
	cfg     SMTPConfig
	options []mail.Option
}

// NewSMTPMailer checks cfg and prepares the client options used for every send.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("creating smtp mailer: host is empty")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("creating smtp mailer: sender address is empty")
	}

	policy, err := ParseTLSPolicy(cfg.TLS)
	if err != nil {
		return nil, fmt.Errorf("creating smtp mailer: %w", err)
	}

	options := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(policy),
	}
	if cfg.Timeout > 0 {
		options = append(options, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return &SMTPMailer{cfg: cfg, options: options}, nil
}

// ParseTLSPolicy maps a configuration value to a go-mail TLS policy. An empty value is opportunistic.
func ParseTLSPolicy(value string) (mail.TLSPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "opportunistic":
		return mail.TLSOpportunistic, nil
	case "mandatory":
		return mail.TLSMandatory, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("unknown tls policy %q", value)
	}
}

// Send builds msg and delivers it over a fresh connection.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	email, err := m.build(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(m.cfg.Host, m.options...)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}

	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	if err := client.DialAndSendWithContext(ctx, email); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

func (m *SMTPMailer) build(msg Message) (*mail.Msg, error) {
	email := mail.NewMsg()
	if err := email.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("setting sender %s: %w", m.cfg.From, err)
	}
	if err := email.To(msg.To); err != nil {
		return nil, fmt.Errorf("setting recipient %s: %w", msg.To, err)
	}
	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Body)
	return email, nil
}
