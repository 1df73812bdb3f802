// File: internal/infrastructure/mail/smtp_sender.go
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/config"
	domainErrors "github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/errors"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
)

// SMTPSender implements interfaces.MailSender. Provider settings are chosen
// by the recipient's domain, falling back to the default provider.
type SMTPSender struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func NewSMTPSender(cfg config.MailConfig, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, logger: logger.Named("mail")}
}

// providerFor picks the SMTP settings for a recipient address.
func (s *SMTPSender) providerFor(to string) config.SMTPConfig {
	at := strings.LastIndex(to, "@")
	if at >= 0 {
		domain := strings.ToLower(to[at+1:])
		if p, ok := s.cfg.Providers[domain]; ok {
			return p
		}
	}
	return s.cfg.Default
}

// Send dispatches a single HTML mail. Failures wrap ErrMailDelivery so the
// caller can report them distinctly from storage errors.
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrMailDelivery, err)
	}

	p := s.providerFor(to)
	addr := fmt.Sprintf("%s:%d", p.Host, p.Port)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if p.Username != "" {
		auth = smtp.PlainAuth("", p.Username, p.Password, p.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		s.logger.Error("smtp send failed",
			zap.String("host", p.Host),
			zap.String("to_domain", to[strings.LastIndex(to, "@")+1:]),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", domainErrors.ErrMailDelivery, err)
	}
	return nil
}

var _ interfaces.MailSender = (*SMTPSender)(nil)
