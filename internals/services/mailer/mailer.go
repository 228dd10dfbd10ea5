// file: internals/services/mailer/mailer.go
package mailer

import "log"

// Mailer is the outbound-notification collaborator. Delivery is best-effort:
// callers log failures and move on, they never fail the request over mail.
type Mailer interface {
	SendHTML(to, subject, htmlBody string) error
}

// ConsoleMailer is the dev/test fallback: it just logs the message.
type ConsoleMailer struct{}

func (ConsoleMailer) SendHTML(to, subject, htmlBody string) error {
	log.Printf("[MAIL] to=%s subject=%q (%d bytes)", to, subject, len(htmlBody))
	return nil
}
