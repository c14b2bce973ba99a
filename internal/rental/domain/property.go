package domain

import "time"

// PaymentFrequency is how often rent falls due for a property or unit.
type PaymentFrequency string

const (
	FrequencyWeekly  PaymentFrequency = "weekly"
	FrequencyMonthly PaymentFrequency = "monthly"
)

func (f PaymentFrequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly
}

type Property struct {
	ID         string
	LandlordID string
	Address    string
	City       string
	State      string
	ZipCode    string

	TotalUnits       int
	TotalRentAmount  float64
	PaymentFrequency PaymentFrequency

	ElectricIncluded bool
	WaterIncluded    bool
	InternetIncluded bool
	GasIncluded      bool

	Amenities   string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}
