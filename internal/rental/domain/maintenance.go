package domain

import "time"

type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type MaintenanceStatus string

const (
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

type MaintenanceCategory string

const (
	CategoryPlumbing   MaintenanceCategory = "plumbing"
	CategoryElectrical MaintenanceCategory = "electrical"
	CategoryHVAC       MaintenanceCategory = "hvac"
	CategoryAppliance  MaintenanceCategory = "appliance"
	CategoryStructural MaintenanceCategory = "structural"
	CategoryPest       MaintenanceCategory = "pest"
	CategoryOtherWork  MaintenanceCategory = "other"
)

func (c MaintenanceCategory) Valid() bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryHVAC, CategoryAppliance,
		CategoryStructural, CategoryPest, CategoryOtherWork:
		return true
	}
	return false
}

type MaintenanceRequest struct {
	ID         string
	UnitID     string
	PropertyID string
	TenantID   string
	LandlordID string

	Title       string
	Description string
	Priority    MaintenancePriority
	Status      MaintenanceStatus
	Category    MaintenanceCategory

	LandlordResponse string
	CompletedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
