package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/store"
	"github.com/rentlinkhq/rentlink/pkg/idx"
	"github.com/rentlinkhq/rentlink/pkg/slogx"
)

type PaymentService struct {
	Store store.Store
}

// Create records a payment obligation against the caller's unit. Tenants
// record their own payments; the landlord and property references are
// derived from the unit, never trusted from the request.
func (s *PaymentService) Create(ctx context.Context, tenant domain.User, p domain.Payment) (domain.Payment, error) {
	log := slogx.FromContext(ctx)

	if tenant.Role != domain.RoleTenant {
		return domain.Payment{}, ErrForbidden
	}
	if !p.Type.Valid() || p.Amount <= 0 || p.DueDate.IsZero() {
		return domain.Payment{}, ErrInvalidRequest
	}

	// 1. The caller must currently occupy a unit.
	unit, err := s.Store.Units().GetUnitByTenant(ctx, tenant.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrInvalidState
		}
		return domain.Payment{}, err
	}
	prop, err := s.Store.Properties().GetPropertyByID(ctx, unit.PropertyID)
	if err != nil {
		return domain.Payment{}, err
	}

	// 2. Persist as pending; paid/verified come later via MarkPaid/Verify.
	p.ID = idx.New().String()
	p.UnitID = unit.ID
	p.PropertyID = prop.ID
	p.TenantID = tenant.ID
	p.LandlordID = prop.LandlordID
	p.Status = domain.PaymentPending
	p.PaidDate = nil
	p.LandlordVerified = false
	p.VerificationDate = nil

	if err := s.Store.Payments().CreatePayment(ctx, p); err != nil {
		log.Error("failed to create payment", slog.Any("error", err))
		return domain.Payment{}, err
	}

	log.Info("payment recorded",
		slog.String("payment_id", p.ID),
		slog.String("tenant_id", tenant.ID),
	)
	return s.Store.Payments().GetPaymentByID(ctx, p.ID)
}

// List returns payments visible to the caller: their own for tenants, all
// payments against their properties for landlords.
func (s *PaymentService) List(ctx context.Context, caller domain.User) ([]domain.Payment, error) {
	if caller.Role == domain.RoleOwner {
		return s.Store.Payments().ListPaymentsByLandlord(ctx, caller.ID)
	}
	return s.Store.Payments().ListPaymentsByTenant(ctx, caller.ID)
}

// MarkPaid records the paid date and a proof-of-payment URL on one of the
// tenant's own payments.
func (s *PaymentService) MarkPaid(ctx context.Context, tenant domain.User, paymentID, proofURL string) (domain.Payment, error) {
	log := slogx.FromContext(ctx)

	p, err := s.Store.Payments().GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrNotFound
		}
		return domain.Payment{}, err
	}
	if p.TenantID != tenant.ID {
		return domain.Payment{}, ErrForbidden
	}

	if err := s.Store.Payments().MarkPaid(ctx, paymentID, time.Now(), proofURL); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			return domain.Payment{}, ErrInvalidState
		}
		log.Error("failed to mark payment paid",
			slog.String("payment_id", paymentID),
			slog.Any("error", err),
		)
		return domain.Payment{}, err
	}

	log.Info("payment marked paid", slog.String("payment_id", paymentID))
	return s.Store.Payments().GetPaymentByID(ctx, paymentID)
}

// Verify records the landlord's confirmation that a paid payment was
// received.
func (s *PaymentService) Verify(ctx context.Context, landlord domain.User, paymentID string) (domain.Payment, error) {
	log := slogx.FromContext(ctx)

	if landlord.Role != domain.RoleOwner {
		return domain.Payment{}, ErrForbidden
	}
	p, err := s.Store.Payments().GetPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrNotFound
		}
		return domain.Payment{}, err
	}
	if p.LandlordID != landlord.ID {
		return domain.Payment{}, ErrForbidden
	}

	if err := s.Store.Payments().Verify(ctx, paymentID, time.Now()); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			return domain.Payment{}, ErrInvalidState
		}
		log.Error("failed to verify payment",
			slog.String("payment_id", paymentID),
			slog.Any("error", err),
		)
		return domain.Payment{}, err
	}

	log.Info("payment verified", slog.String("payment_id", paymentID))
	return s.Store.Payments().GetPaymentByID(ctx, paymentID)
}
