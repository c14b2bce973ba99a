package http

import (
	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

// Conversions from domain records to the wire shapes in pkg/rentsdk.

func toUserResponse(u domain.User) rentsdk.UserResponse {
	return rentsdk.UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               string(u.Role),
		Phone:              u.Phone,
		Bio:                u.Bio,
		Address:            u.Address,
		City:               u.City,
		State:              u.State,
		ZipCode:            u.ZipCode,
		Country:            u.Country,
		ProfilePhoto:       u.ProfilePhoto,
		EmailNotifications: u.EmailNotifications,
		SMSNotifications:   u.SMSNotifications,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// toPublicUserResponse drops contact preferences and address details.
func toPublicUserResponse(u domain.User) rentsdk.UserResponse {
	return rentsdk.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Phone:        u.Phone,
		Bio:          u.Bio,
		ProfilePhoto: u.ProfilePhoto,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toPropertyResponse(p domain.Property) rentsdk.PropertyResponse {
	return rentsdk.PropertyResponse{
		ID:               p.ID,
		LandlordID:       p.LandlordID,
		Address:          p.Address,
		City:             p.City,
		State:            p.State,
		ZipCode:          p.ZipCode,
		TotalUnits:       p.TotalUnits,
		TotalRentAmount:  p.TotalRentAmount,
		PaymentFrequency: string(p.PaymentFrequency),
		ElectricIncluded: p.ElectricIncluded,
		WaterIncluded:    p.WaterIncluded,
		InternetIncluded: p.InternetIncluded,
		GasIncluded:      p.GasIncluded,
		Amenities:        p.Amenities,
		Description:      p.Description,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toUnitResponse(u domain.Unit) rentsdk.UnitResponse {
	return rentsdk.UnitResponse{
		ID:               u.ID,
		PropertyID:       u.PropertyID,
		UnitNumber:       u.UnitNumber,
		RentAmount:       u.RentAmount,
		PaymentFrequency: string(u.PaymentFrequency),
		Status:           string(u.Status),
		TenantID:         u.TenantID,
		LeaseStart:       u.LeaseStart,
		LeaseEnd:         u.LeaseEnd,
		Amenities:        u.Amenities,
		Description:      u.Description,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toInvitationResponse(inv domain.Invitation) rentsdk.InvitationResponse {
	return rentsdk.InvitationResponse{
		ID:         inv.ID,
		LandlordID: inv.LandlordID,
		Email:      inv.Email,
		Message:    inv.Message,
		PropertyID: inv.PropertyID,
		UnitID:     inv.UnitID,
		TenantID:   inv.TenantID,
		Status:     string(inv.Status),
		ExpiresAt:  inv.ExpiresAt,
		AcceptedAt: inv.AcceptedAt,
		CreatedAt:  inv.CreatedAt,
	}
}

func toPaymentResponse(p domain.Payment) rentsdk.PaymentResponse {
	return rentsdk.PaymentResponse{
		ID:               p.ID,
		UnitID:           p.UnitID,
		PropertyID:       p.PropertyID,
		TenantID:         p.TenantID,
		LandlordID:       p.LandlordID,
		Type:             string(p.Type),
		Amount:           p.Amount,
		DueDate:          p.DueDate,
		PaidDate:         p.PaidDate,
		Status:           string(p.Status),
		Description:      p.Description,
		ProofOfPayment:   p.ProofOfPayment,
		LandlordVerified: p.LandlordVerified,
		VerificationDate: p.VerificationDate,
		CreatedAt:        p.CreatedAt,
	}
}

func toMaintenanceResponse(r domain.MaintenanceRequest) rentsdk.MaintenanceResponse {
	return rentsdk.MaintenanceResponse{
		ID:               r.ID,
		UnitID:           r.UnitID,
		PropertyID:       r.PropertyID,
		TenantID:         r.TenantID,
		LandlordID:       r.LandlordID,
		Title:            r.Title,
		Description:      r.Description,
		Priority:         string(r.Priority),
		Status:           string(r.Status),
		Category:         string(r.Category),
		LandlordResponse: r.LandlordResponse,
		CompletedAt:      r.CompletedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toMessageResponse(m domain.Message) rentsdk.MessageResponse {
	return rentsdk.MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		PropertyID: m.PropertyID,
		Content:    m.Content,
		Type:       string(m.Type),
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}
