// Package mailer delivers the notification emails the service sends.
// Delivery is best-effort: a failed send is reported to the caller as a
// warning, never as a reason to roll back the record that triggered it.
package mailer

import "context"

// Mailer is the notification transport consumed by the services.
type Mailer interface {
	// SendInvitation emails a rental invitation to a prospective tenant.
	// invitationID is the reference the recipient uses to locate the
	// invitation when accepting.
	SendInvitation(ctx context.Context, toEmail, landlordName, message, invitationID string) error
}
