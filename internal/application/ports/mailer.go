package ports

// Mailer envía correos transaccionales (códigos de verificación, enlaces de recuperación).
type Mailer interface {
	Send(to, subject, body string) error
}
