package rentsdk

import "time"

// Shared request/response shapes for the RentLink HTTP API. The server's
// handlers encode these and the SDK client decodes them, so the two sides
// can never drift apart.

type ProfileRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

type SettingsRequest struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
}

type PhotoRequest struct {
	PhotoURL string `json:"photo_url"`
}

type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	Phone              string    `json:"phone,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	Address            string    `json:"address,omitempty"`
	City               string    `json:"city,omitempty"`
	State              string    `json:"state,omitempty"`
	ZipCode            string    `json:"zip_code,omitempty"`
	Country            string    `json:"country,omitempty"`
	ProfilePhoto       string    `json:"profile_photo,omitempty"`
	EmailNotifications bool      `json:"email_notifications"`
	SMSNotifications   bool      `json:"sms_notifications"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type PropertyRequest struct {
	Address          string  `json:"address"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	ZipCode          string  `json:"zip_code,omitempty"`
	TotalUnits       int     `json:"total_units,omitempty"`
	TotalRentAmount  float64 `json:"total_rent_amount,omitempty"`
	PaymentFrequency string  `json:"payment_frequency,omitempty"`
	ElectricIncluded bool    `json:"electric_included,omitempty"`
	WaterIncluded    bool    `json:"water_included,omitempty"`
	InternetIncluded bool    `json:"internet_included,omitempty"`
	GasIncluded      bool    `json:"gas_included,omitempty"`
	Amenities        string  `json:"amenities,omitempty"`
	Description      string  `json:"description,omitempty"`
}

type PropertyResponse struct {
	ID               string    `json:"id"`
	LandlordID       string    `json:"landlord_id"`
	Address          string    `json:"address"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	ZipCode          string    `json:"zip_code,omitempty"`
	TotalUnits       int       `json:"total_units"`
	TotalRentAmount  float64   `json:"total_rent_amount"`
	PaymentFrequency string    `json:"payment_frequency"`
	ElectricIncluded bool      `json:"electric_included"`
	WaterIncluded    bool      `json:"water_included"`
	InternetIncluded bool      `json:"internet_included"`
	GasIncluded      bool      `json:"gas_included"`
	Amenities        string    `json:"amenities,omitempty"`
	Description      string    `json:"description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type UnitRequest struct {
	UnitNumber       string     `json:"unit_number"`
	RentAmount       float64    `json:"rent_amount"`
	PaymentFrequency string     `json:"payment_frequency,omitempty"`
	LeaseStart       *time.Time `json:"lease_start,omitempty"`
	LeaseEnd         *time.Time `json:"lease_end,omitempty"`
	Amenities        string     `json:"amenities,omitempty"`
	Description      string     `json:"description,omitempty"`
}

type UnitResponse struct {
	ID               string     `json:"id"`
	PropertyID       string     `json:"property_id"`
	UnitNumber       string     `json:"unit_number"`
	RentAmount       float64    `json:"rent_amount"`
	PaymentFrequency string     `json:"payment_frequency"`
	Status           string     `json:"status"`
	TenantID         string     `json:"tenant_id,omitempty"`
	LeaseStart       *time.Time `json:"lease_start,omitempty"`
	LeaseEnd         *time.Time `json:"lease_end,omitempty"`
	Amenities        string     `json:"amenities,omitempty"`
	Description      string     `json:"description,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type AssignRequest struct {
	TenantID   string     `json:"tenant_id"`
	LeaseStart *time.Time `json:"lease_start,omitempty"`
	LeaseEnd   *time.Time `json:"lease_end,omitempty"`
}

type InviteRequest struct {
	Email      string `json:"email"`
	Message    string `json:"message,omitempty"`
	PropertyID string `json:"property_id,omitempty"`
	UnitID     string `json:"unit_id,omitempty"`
}

type InvitationResponse struct {
	ID         string     `json:"id"`
	LandlordID string     `json:"landlord_id"`
	Email      string     `json:"email"`
	Message    string     `json:"message,omitempty"`
	PropertyID string     `json:"property_id,omitempty"`
	UnitID     string     `json:"unit_id,omitempty"`
	TenantID   string     `json:"tenant_id,omitempty"`
	Status     string     `json:"status"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	// Warning is set when the invitation was created but the notification
	// email could not be delivered.
	Warning string `json:"warning,omitempty"`
}

type AcceptResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	Unit       *UnitResponse      `json:"unit,omitempty"`
}

type PaymentRequest struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Description string    `json:"description,omitempty"`
	ProofURL    string    `json:"proof_url,omitempty"`
}

type PaymentResponse struct {
	ID               string     `json:"id"`
	UnitID           string     `json:"unit_id"`
	PropertyID       string     `json:"property_id"`
	TenantID         string     `json:"tenant_id"`
	LandlordID       string     `json:"landlord_id"`
	Type             string     `json:"type"`
	Amount           float64    `json:"amount"`
	DueDate          time.Time  `json:"due_date"`
	PaidDate         *time.Time `json:"paid_date,omitempty"`
	Status           string     `json:"status"`
	Description      string     `json:"description,omitempty"`
	ProofOfPayment   string     `json:"proof_of_payment,omitempty"`
	LandlordVerified bool       `json:"landlord_verified"`
	VerificationDate *time.Time `json:"verification_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type MaintenanceCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

type MaintenanceUpdateRequest struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
}

type MaintenanceResponse struct {
	ID               string     `json:"id"`
	UnitID           string     `json:"unit_id"`
	PropertyID       string     `json:"property_id"`
	TenantID         string     `json:"tenant_id"`
	LandlordID       string     `json:"landlord_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	Category         string     `json:"category"`
	LandlordResponse string     `json:"landlord_response,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type MessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	PropertyID string `json:"property_id,omitempty"`
	Content    string `json:"content"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	PropertyID string    `json:"property_id,omitempty"`
	Content    string    `json:"content"`
	Type       string    `json:"message_type"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}

// ErrorResponse is the error body every endpoint uses.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
