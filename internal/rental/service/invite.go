package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/mailer"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/idx"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

// InviteTTL is how long an invitation remains acceptable after issue.
const InviteTTL = 7 * 24 * time.Hour

var (
	ErrEmailAlreadyRegistered = errors.New("email already belongs to an account")
	ErrInviteExpired          = errors.New("invitation has expired")

	// ErrNotificationFailed reports that the invitation was created but the
	// email could not be delivered. Issue returns it alongside the created
	// invitation; it must never cause a rollback.
	ErrNotificationFailed = errors.New("invitation created but notification failed")
)

type InviteService struct {
	Store  store.Store
	Mailer mailer.Mailer
}

// AssignmentResult confirms the tenant-unit binding produced by accepting
// an invitation. Unit is nil when the invitation did not reference a unit.
type AssignmentResult struct {
	Invitation domain.Invitation
	Unit       *domain.Unit
}

// Issue creates a pending invitation from a landlord to a prospective
// tenant and emails them an acceptance link.
func (s *InviteService) Issue(
	ctx context.Context,
	landlord domain.User,
	email string,
	message string,
	propertyID string,
	unitID string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Only landlords issue invitations.
	if landlord.Role != domain.RoleOwner {
		return domain.Invitation{}, ErrForbidden
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invitation{}, fmt.Errorf("%w: invalid email", ErrInvalidRequest)
	}

	// 2. The target email must not already belong to an account.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("attempted to invite an already-registered email",
			slog.String("landlord_id", landlord.ID),
		)
		return domain.Invitation{}, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email registration", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 3. Referenced property and unit must exist and belong to the caller.
	if propertyID != "" {
		prop, err := s.Store.Properties().GetPropertyByID(ctx, propertyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Invitation{}, ErrNotFound
			}
			log.Error("failed to fetch property", slog.Any("error", err))
			return domain.Invitation{}, err
		}
		if prop.LandlordID != landlord.ID {
			return domain.Invitation{}, ErrForbidden
		}
	}
	if unitID != "" {
		unit, err := s.Store.Units().GetUnitByID(ctx, unitID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Invitation{}, ErrNotFound
			}
			log.Error("failed to fetch unit", slog.Any("error", err))
			return domain.Invitation{}, err
		}
		prop, err := s.Store.Properties().GetPropertyByID(ctx, unit.PropertyID)
		if err != nil {
			log.Error("failed to fetch unit's property", slog.Any("error", err))
			return domain.Invitation{}, err
		}
		if prop.LandlordID != landlord.ID {
			return domain.Invitation{}, ErrForbidden
		}
		if propertyID != "" && unit.PropertyID != propertyID {
			return domain.Invitation{}, fmt.Errorf("%w: unit does not belong to property", ErrInvalidRequest)
		}
	}

	// 4. Persist the pending invitation.
	now := time.Now()
	inv := domain.Invitation{
		ID:         idx.New().String(),
		LandlordID: landlord.ID,
		Email:      email,
		Message:    message,
		PropertyID: propertyID,
		UnitID:     unitID,
		Status:     domain.InvitationPending,
		ExpiresAt:  now.Add(InviteTTL),
	}
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("landlord_id", landlord.ID),
	)

	// 5. Deliver the email. The invitation exists either way; a failed send
	// is reported to the caller as a warning, not a rollback.
	if err := s.Mailer.SendInvitation(ctx, email, landlord.Name, message, inv.ID); err != nil {
		log.Warn("failed to send invitation email",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return inv, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return inv, nil
}

// ListInvitations returns every invitation the landlord has issued, newest
// first. Pending rows past their deadline are presented as expired without
// mutating the stored status.
func (s *InviteService) ListInvitations(ctx context.Context, landlord domain.User) ([]domain.Invitation, error) {
	if landlord.Role != domain.RoleOwner {
		return nil, ErrForbidden
	}

	invs, err := s.Store.Invitations().ListInvitationsByLandlord(ctx, landlord.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list invitations", slog.Any("error", err))
		return nil, err
	}

	now := time.Now()
	for i := range invs {
		invs[i].Status = invs[i].EffectiveStatus(now)
	}
	return invs, nil
}

// Cancel moves one of the caller's pending invitations to cancelled.
func (s *InviteService) Cancel(ctx context.Context, landlord domain.User, invitationID string) error {
	log := slogx.FromContext(ctx)

	// 1. Fetch and authorize.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}
	if inv.LandlordID != landlord.ID {
		return ErrForbidden
	}

	// 2. Only pending invitations can be cancelled. A pending row past its
	// deadline already reads as expired, so it cannot be cancelled either.
	if inv.EffectiveStatus(time.Now()) != domain.InvitationPending {
		return ErrInvalidState
	}

	// 3. Guarded write: if the status changed under us the transition is
	// no longer valid.
	err = s.Store.Invitations().UpdateInvitationStatus(ctx, inv.ID, domain.InvitationCancelled, "", nil)
	if err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			return ErrInvalidState
		}
		log.Error("failed to cancel invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation cancelled", slog.String("invitation_id", inv.ID))
	return nil
}

// Accept processes a tenant accepting an invitation addressed to them. The
// invitation transition and the unit assignment happen in one transaction:
// if the unit can no longer be assigned, the invitation stays pending.
func (s *InviteService) Accept(ctx context.Context, tenant domain.User, invitationID string) (AssignmentResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Only tenants accept invitations.
	if tenant.Role != domain.RoleTenant {
		return AssignmentResult{}, ErrForbidden
	}

	// 2. Fetch the invitation and check it is addressed to the caller.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AssignmentResult{}, ErrNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return AssignmentResult{}, err
	}
	if inv.Email != tenant.Email {
		log.Warn("invitation accept attempted by wrong account",
			slog.String("invitation_id", inv.ID),
			slog.String("user_id", tenant.ID),
		)
		return AssignmentResult{}, ErrForbidden
	}
	if inv.Status != domain.InvitationPending {
		return AssignmentResult{}, ErrInvalidState
	}

	// 3. Lazy expiry: the stored status only flips when an accept is
	// attempted past the deadline.
	now := time.Now()
	if inv.ExpiredBy(now) {
		err := s.Store.Invitations().UpdateInvitationStatus(ctx, inv.ID, domain.InvitationExpired, "", nil)
		if err != nil && !errors.Is(err, store.ErrStaleStatus) {
			log.Error("failed to expire invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return AssignmentResult{}, err
		}
		return AssignmentResult{}, ErrInviteExpired
	}

	// 4. Atomic accept: status-guarded invitation update plus, when a unit
	// is referenced, the conditional occupancy write. Either both commit or
	// neither does.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Invitations().UpdateInvitationStatus(ctx, inv.ID, domain.InvitationAccepted, tenant.ID, &now)
		if err != nil {
			if errors.Is(err, store.ErrStaleStatus) {
				// The invitation left pending between our read and this
				// write (concurrent accept or cancel).
				return ErrInvalidState
			}
			return err
		}
		if inv.UnitID != "" {
			if err := tx.Units().AssignTenant(ctx, inv.UnitID, tenant.ID, nil, nil); err != nil {
				if errors.Is(err, store.ErrStaleStatus) {
					// Lost the occupancy race; roll back so the
					// invitation stays pending.
					return ErrUnitUnavailable
				}
				if errors.Is(err, store.ErrNotFound) {
					return ErrNotFound
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidState) && !errors.Is(err, ErrUnitUnavailable) && !errors.Is(err, ErrNotFound) {
			log.Error("failed to accept invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		return AssignmentResult{}, err
	}

	inv.Status = domain.InvitationAccepted
	inv.TenantID = tenant.ID
	inv.AcceptedAt = &now

	result := AssignmentResult{Invitation: inv}
	if inv.UnitID != "" {
		unit, err := s.Store.Units().GetUnitByID(ctx, inv.UnitID)
		if err != nil {
			log.Error("failed to reload assigned unit", slog.Any("error", err))
			return AssignmentResult{}, err
		}
		result.Unit = &unit
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("tenant_id", tenant.ID),
		slog.String("unit_id", inv.UnitID),
	)
	return result, nil
}
