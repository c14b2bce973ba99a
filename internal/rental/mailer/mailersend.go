package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

// MailerSend delivers mail through the MailerSend API.
type MailerSend struct {
	client      *mailersend.Mailersend
	from        mailersend.From
	frontendURL string
}

func NewMailerSend(apiKey, fromName, fromEmail, frontendURL string) *MailerSend {
	return &MailerSend{
		client:      mailersend.NewMailersend(apiKey),
		from:        mailersend.From{Name: fromName, Email: fromEmail},
		frontendURL: frontendURL,
	}
}

func (m *MailerSend) SendInvitation(ctx context.Context, toEmail, landlordName, message, invitationID string) error {
	subject := fmt.Sprintf("Rental Invitation from %s", landlordName)
	acceptURL := fmt.Sprintf("%s/accept-invitation/%s", m.frontendURL, invitationID)

	var messageBlock string
	if message != "" {
		messageBlock = fmt.Sprintf("<p><strong>Message from landlord:</strong> %s</p>", message)
	}

	html := fmt.Sprintf(`
		<h2>You've been invited to join RentLink!</h2>
		<p>Hi there!</p>
		<p>%s has invited you to become a tenant on RentLink.</p>
		%s
		<p>Click the link below to accept this invitation and create your tenant account:</p>
		<p><a href="%s" style="background-color: #3B82F6; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Accept Invitation</a></p>
		<p>This invitation expires in 7 days.</p>
		<p>Best regards,<br>The RentLink Team</p>
	`, landlordName, messageBlock, acceptURL)

	text := fmt.Sprintf(
		"%s has invited you to become a tenant on RentLink.\n\nAccept here: %s\n\nThis invitation expires in 7 days.",
		landlordName, acceptURL)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: toEmail}})
	msg.SetSubject(subject)
	msg.SetText(text)
	msg.SetHTML(html)

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
