package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTP delivers mail through a plain SMTP relay. Intended for self-hosted
// deployments and local development against Mailpit.
type SMTP struct {
	addr        string
	from        string
	user        string
	pass        string
	host        string
	frontendURL string
}

func NewSMTP(host string, port int, from, user, pass, frontendURL string) *SMTP {
	return &SMTP{
		addr:        fmt.Sprintf("%s:%d", strings.TrimSpace(host), port),
		from:        strings.TrimSpace(from),
		user:        strings.TrimSpace(user),
		pass:        strings.TrimSpace(pass),
		host:        strings.TrimSpace(host),
		frontendURL: frontendURL,
	}
}

func (s *SMTP) SendInvitation(ctx context.Context, toEmail, landlordName, message, invitationID string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	subject := fmt.Sprintf("Rental Invitation from %s", landlordName)
	acceptURL := fmt.Sprintf("%s/accept-invitation/%s", s.frontendURL, invitationID)

	var messageBlock string
	if message != "" {
		messageBlock = fmt.Sprintf("\nMessage from landlord: %s\n", message)
	}

	body := fmt.Sprintf(
		"%s has invited you to become a tenant on RentLink.\n%s\nAccept here: %s\n\nThis invitation expires in 7 days.\n",
		landlordName, messageBlock, acceptURL)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", s.from)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n", body)

	// net/smtp has no context support; honour cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}
	return smtp.SendMail(s.addr, auth, s.from, []string{toEmail}, buf.Bytes())
}
