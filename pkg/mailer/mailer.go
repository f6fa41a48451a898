// Package mailer delivers notification emails over SMTP.
package mailer

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"
	mail "github.com/wneessen/go-mail"

	"github.com/briefly-app/briefly/pkg/config"
)

// Message is a single outgoing notification. PlainBody is always set,
// HTMLBody is optional and added as an alternative part when present.
type Message struct {
	To        string
	Subject   string
	PlainBody string
	HTMLBody  string
}

// Mailer sends messages through a single SMTP endpoint
type Mailer struct {
	config config.EmailConfig
}

// New creates a mailer for the given SMTP settings
func New(cfg config.EmailConfig) *Mailer {
	return &Mailer{config: cfg}
}

// Send delivers a single message. A new SMTP connection is made per send,
// notification volume is low enough that pooling is not worth it.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.From(m.config.From); err != nil {
		return fmt.Errorf("set sender %q: %w", m.config.From, err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("set recipient %q: %w", msg.To, err)
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.PlainBody)
	if msg.HTMLBody != "" {
		mm.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	}

	client, err := m.client()
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}
	lgr.Printf("[DEBUG] sent email to %s, subject %q", msg.To, msg.Subject)
	return nil
}

func (m *Mailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.config.Port),
		mail.WithTimeout(m.config.Timeout),
	}

	if m.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.config.Username),
			mail.WithPassword(m.config.Password),
		)
	}

	// nil means the config never said, stay secure
	if m.config.STARTTLS == nil || *m.config.STARTTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	return mail.NewClient(m.config.Host, opts...)
}
