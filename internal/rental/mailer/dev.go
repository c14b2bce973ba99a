package mailer

import (
	"context"

	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

// Dev logs outgoing mail instead of delivering it. Used when no mail
// provider is configured so the invitation flow still works locally.
type Dev struct{}

func NewDev() *Dev { return &Dev{} }

func (d *Dev) SendInvitation(ctx context.Context, toEmail, landlordName, message, invitationID string) error {
	slogx.FromContext(ctx).Info("dev mailer: invitation email",
		"to", toEmail,
		"landlord", landlordName,
		"invitation_id", invitationID,
	)
	return nil
}
