// file: internals/services/mailer/sendgrid.go
package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendgridMailer struct {
	key  string
	from *sgmail.Email
}

func NewSendgridMailer(apiKey, fromAddress string) *SendgridMailer {
	return &SendgridMailer{
		key:  apiKey,
		from: sgmail.NewEmail("TutorHub", fromAddress),
	}
}

func (s *SendgridMailer) SendHTML(to, subject, htmlBody string) error {
	msg := sgmail.NewSingleEmail(s.from, subject, sgmail.NewEmail("", to), "", htmlBody)
	resp, err := sendgrid.NewSendClient(s.key).Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// New picks sendgrid when a key is configured, console otherwise.
func New(apiKey, fromAddress string) Mailer {
	if apiKey == "" {
		return ConsoleMailer{}
	}
	return NewSendgridMailer(apiKey, fromAddress)
}
