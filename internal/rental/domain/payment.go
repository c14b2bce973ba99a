package domain

import "time"

type PaymentType string

const (
	PaymentRent     PaymentType = "rent"
	PaymentElectric PaymentType = "electric"
	PaymentWater    PaymentType = "water"
	PaymentInternet PaymentType = "internet"
	PaymentGas      PaymentType = "gas"
	PaymentOther    PaymentType = "other"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentRent, PaymentElectric, PaymentWater, PaymentInternet, PaymentGas, PaymentOther:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentOverdue  PaymentStatus = "overdue"
	PaymentExtended PaymentStatus = "extended"
	PaymentVerified PaymentStatus = "verified"
)

type Payment struct {
	ID         string
	UnitID     string
	PropertyID string
	TenantID   string
	LandlordID string

	Type     PaymentType
	Amount   float64
	DueDate  time.Time
	PaidDate *time.Time
	Status   PaymentStatus

	Description    string
	ProofOfPayment string // URL to the uploaded proof; upload handling is external

	LandlordVerified bool
	VerificationDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
