package store

import (
	"context"
	"errors"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrStaleStatus is returned by status-guarded updates when the row's
	// status no longer matches the expected value at write time. Callers
	// translate it into their own conflict error (e.g. unit unavailable).
	ErrStaleStatus = errors.New("store: status changed since read")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and let transactional
// code use the exact same surface as non-transactional code.
type Store interface {
	Users() Users
	Properties() Properties
	Units() Units
	Invitations() Invitations
	Payments() Payments
	Maintenance() Maintenance
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step mutations that must be atomic
	// (e.g. invitation acceptance plus unit assignment).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByExternalID resolves the identity-provider subject to a user.
	GetUserByExternalID(ctx context.Context, externalID string) (domain.User, error)

	// GetUserByEmail is used to reject invitations to already-registered emails.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser overwrites the mutable profile fields and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// UpdateNotificationSettings mutates only the notification flags.
	UpdateNotificationSettings(ctx context.Context, userID string, email, sms bool) error

	// UpdateProfilePhoto sets the profile photo URL.
	UpdateProfilePhoto(ctx context.Context, userID, photoURL string) error

	// ListTenants returns every tenant-role user ordered by name.
	ListTenants(ctx context.Context) ([]domain.User, error)

	// ListAvailableTenants returns tenants not currently assigned to any unit.
	ListAvailableTenants(ctx context.Context) ([]domain.User, error)
}

type Properties interface {
	GetPropertyByID(ctx context.Context, id string) (domain.Property, error)

	// ListPropertiesByLandlord returns a landlord's properties, newest first.
	ListPropertiesByLandlord(ctx context.Context, landlordID string) ([]domain.Property, error)

	CreateProperty(ctx context.Context, p domain.Property) error
	UpdateProperty(ctx context.Context, p domain.Property) error

	// DeleteProperty cascades to units and invitations (per schema).
	DeleteProperty(ctx context.Context, id string) error
}

type Units interface {
	GetUnitByID(ctx context.Context, id string) (domain.Unit, error)

	// ListUnitsByProperty returns all units of a property ordered by unit number.
	ListUnitsByProperty(ctx context.Context, propertyID string) ([]domain.Unit, error)

	// GetUnitByTenant returns the unit currently occupied by the tenant.
	GetUnitByTenant(ctx context.Context, tenantID string) (domain.Unit, error)

	CreateUnit(ctx context.Context, u domain.Unit) error
	UpdateUnit(ctx context.Context, u domain.Unit) error
	DeleteUnit(ctx context.Context, id string) error

	// AssignTenant performs the conditional occupancy write: the tenant is
	// attached and the status moved to occupied only if the row's status is
	// still available at write time. Two racing assignments therefore
	// resolve to exactly one winner; the loser gets ErrStaleStatus.
	AssignTenant(ctx context.Context, unitID, tenantID string, leaseStart, leaseEnd *time.Time) error

	// RemoveTenant clears the tenant and moves occupied -> available,
	// guarded on the row still being occupied.
	RemoveTenant(ctx context.Context, unitID string) error

	// SetStatus moves the unit between available and maintenance, guarded
	// on the expected prior status.
	SetStatus(ctx context.Context, unitID string, from, to domain.UnitStatus) error
}

type Invitations interface {
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// ListInvitationsByLandlord returns all invitations a landlord has
	// issued, most recent first. Rows are never deleted.
	ListInvitationsByLandlord(ctx context.Context, landlordID string) ([]domain.Invitation, error)

	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// UpdateInvitationStatus moves a pending invitation to a terminal
	// status, guarded on the stored status still being pending. tenantID
	// and acceptedAt are only written for the accepted transition.
	UpdateInvitationStatus(ctx context.Context, id string, to domain.InvitationStatus, tenantID string, acceptedAt *time.Time) error
}

type Payments interface {
	GetPaymentByID(ctx context.Context, id string) (domain.Payment, error)
	ListPaymentsByTenant(ctx context.Context, tenantID string) ([]domain.Payment, error)
	ListPaymentsByLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, p domain.Payment) error

	// MarkPaid records the paid date and proof URL on a pending/overdue payment.
	MarkPaid(ctx context.Context, id string, paidDate time.Time, proofURL string) error

	// Verify flips landlord_verified and stamps the verification date.
	Verify(ctx context.Context, id string, at time.Time) error

	// MarkOverduePayments flips pending payments whose due date has passed
	// to overdue. Returns the number of rows changed. Run by housekeeping.
	MarkOverduePayments(ctx context.Context, now time.Time) (int64, error)
}

type Maintenance interface {
	GetRequestByID(ctx context.Context, id string) (domain.MaintenanceRequest, error)
	ListRequestsByTenant(ctx context.Context, tenantID string) ([]domain.MaintenanceRequest, error)
	ListRequestsByLandlord(ctx context.Context, landlordID string) ([]domain.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, r domain.MaintenanceRequest) error

	// UpdateRequest overwrites status, response and completed_at.
	UpdateRequest(ctx context.Context, r domain.MaintenanceRequest) error
}

type Messages interface {
	GetMessageByID(ctx context.Context, id string) (domain.Message, error)

	// ListConversation returns messages between two users, oldest first.
	ListConversation(ctx context.Context, userA, userB string) ([]domain.Message, error)

	CreateMessage(ctx context.Context, m domain.Message) error
	MarkRead(ctx context.Context, id string) error
}
