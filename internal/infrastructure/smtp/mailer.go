package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/localesapp/locales-api/internal/application/ports"
	"github.com/localesapp/locales-api/pkg/config"
)

var _ ports.Mailer = (*Mailer)(nil)

// Mailer envía correo transaccional por un relay SMTP (códigos de verificación
// y enlaces de recuperación de contraseña).
type Mailer struct {
	host     string
	addr     string
	user     string
	password string
	from     string
}

// NewMailer construye el mailer con la cuenta SMTP configurada.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		addr:     cfg.Addr(),
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Send envía un correo de texto plano.
func (m *Mailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", to, err)
	}
	return nil
}
