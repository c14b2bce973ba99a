package domain

import "time"

// InvitationStatus tracks an invitation through its lifecycle. Transitions
// are monotonic: pending may move to accepted, expired or cancelled, and
// those three are terminal. Invitations are never deleted; they are kept as
// an audit trail of who was invited where.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationExpired   InvitationStatus = "expired"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed out of s.
func (s InvitationStatus) Terminal() bool {
	return s == InvitationAccepted || s == InvitationExpired || s == InvitationCancelled
}

type Invitation struct {
	ID         string
	LandlordID string
	Email      string // Target email; must not belong to an existing account at issue time
	Message    string
	PropertyID string // Optional
	UnitID     string // Optional; when set, acceptance also assigns the unit
	TenantID   string // Set on acceptance only

	Status     InvitationStatus
	ExpiresAt  time.Time
	AcceptedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpiredBy reports whether the invitation's deadline has passed at now.
// Stored status is only flipped lazily when an accept is attempted, so a
// pending row can be past-due; readers use this to present it as expired.
func (inv Invitation) ExpiredBy(now time.Time) bool {
	return !inv.ExpiresAt.After(now)
}

// EffectiveStatus is the status a reader should display at now: a pending
// invitation past its deadline reads as expired even though the stored row
// has not been mutated yet.
func (inv Invitation) EffectiveStatus(now time.Time) InvitationStatus {
	if inv.Status == InvitationPending && inv.ExpiredBy(now) {
		return InvitationExpired
	}
	return inv.Status
}
