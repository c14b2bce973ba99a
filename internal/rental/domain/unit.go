package domain

import "time"

// UnitStatus is the occupancy state of a unit.
//
// Transitions:
//
//	available -> occupied     (tenant assigned, via invitation accept or direct assign)
//	occupied  -> available    (tenant removed)
//	occupied  -> maintenance  (owner-only)
//	maintenance -> available  (owner-only)
//
// Invariant: TenantID is set if and only if the status is occupied.
type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
)

func (s UnitStatus) Valid() bool {
	return s == UnitAvailable || s == UnitOccupied || s == UnitMaintenance
}

type Unit struct {
	ID         string
	PropertyID string
	UnitNumber string // e.g. "Apt 1A"; unique within a property

	RentAmount       float64
	PaymentFrequency PaymentFrequency

	Status   UnitStatus
	TenantID string // Empty unless occupied

	LeaseStart *time.Time
	LeaseEnd   *time.Time

	Amenities   string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
