package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"gifttax/internal/calculator"
	"gifttax/internal/logger"
	"gifttax/internal/model"
	"gifttax/internal/repository"
	"gifttax/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type GiftTaxResponse struct {
	CalculationID        string             `json:"calculation_id"`
	LawConfigured        bool               `json:"law_configured"`
	Law                  *model.LawMetadata `json:"law,omitempty"`
	RecipientName        string             `json:"recipient_name"`
	GiftDate             string             `json:"gift_date"`
	Relationship         string             `json:"relationship"`
	ResidencyStatus      string             `json:"residency_status"`
	PropertyType         string             `json:"property_type"`
	PropertyValue        string             `json:"property_value"`
	DebtAssumed          string             `json:"debt_assumed"`
	PriorGifts           string             `json:"prior_gifts"`
	NetGift              string             `json:"net_gift"`
	BasicDeductionLimit  string             `json:"basic_deduction_limit"`
	PriorGiftsAdjustment string             `json:"prior_gifts_adjustment"`
	BasicDeduction       string             `json:"basic_deduction"`
	TaxableBase          string             `json:"taxable_base"`
	AppliedRate          *string            `json:"applied_rate"`
	ProgressiveDeduction *string            `json:"progressive_deduction"`
	TaxDue               *string            `json:"tax_due"`
	Notes                []string           `json:"notes"`
}

// CalculationEvent is the broadcast summary of a calculation. It carries no
// personal data.
type CalculationEvent struct {
	CalculationID string  `json:"calculation_id"`
	LawVersion    string  `json:"law_version,omitempty"`
	LawConfigured bool    `json:"law_configured"`
	TaxableBase   string  `json:"taxable_base"`
	TaxDue        *string `json:"tax_due"`
}

type OptionsResponse struct {
	Relationships []model.Option `json:"relationships"`
	Residencies   []model.Option `json:"residencies"`
	PropertyTypes []model.Option `json:"property_types"`
}

// --- Collaborators ---

// LawSource hands out the current law table
type LawSource interface {
	Current() model.LawContext
}

// EventPublisher pushes events to connected clients
type EventPublisher interface {
	Publish(eventType string, payload any)
}

// --- Interface ---

type GiftTaxService interface {
	Calculate(ctx context.Context, req model.GiftSubmission, userID string) (GiftTaxResponse, error)
	Options() OptionsResponse
}

type giftTaxService struct {
	laws      LawSource
	auditRepo repository.AuditRepository // nil when the audit trail is disabled
	events    EventPublisher             // may be nil
	log       *slog.Logger
}

func NewGiftTaxService(laws LawSource, auditRepo repository.AuditRepository, events EventPublisher, log *slog.Logger) GiftTaxService {
	return &giftTaxService{laws: laws, auditRepo: auditRepo, events: events, log: log}
}

// --- Implementation ---

// Calculate validates the submission and computes the breakdown against the
// current law table. Validation problems come back as
// calculator.ValidationErrors; law table problems never produce an error.
func (s *giftTaxService) Calculate(ctx context.Context, req model.GiftSubmission, userID string) (GiftTaxResponse, error) {
	gift, err := calculator.ParseGift(req)
	if err != nil {
		return GiftTaxResponse{}, err
	}

	breakdown := calculator.Compute(gift, s.laws.Current())
	res := toGiftTaxResponse(uuid.New(), breakdown)

	if !res.LawConfigured {
		logger.FromContextOr(ctx, s.log).Warn("gift tax computed without a usable law table", "calculation_id", res.CalculationID, "notes", res.Notes)
	}

	s.writeAuditLog(ctx, userID, breakdown, res)

	if s.events != nil {
		event := CalculationEvent{
			CalculationID: res.CalculationID,
			LawConfigured: res.LawConfigured,
			TaxableBase:   res.TaxableBase,
			TaxDue:        res.TaxDue,
		}
		if res.Law != nil {
			event.LawVersion = res.Law.Version
		}
		s.events.Publish(websocket.EventGiftTaxCalculated, event)
	}

	return res, nil
}

func (s *giftTaxService) Options() OptionsResponse {
	return OptionsResponse{
		Relationships: model.RelationshipOptions,
		Residencies:   model.ResidencyOptions,
		PropertyTypes: model.PropertyTypeOptions,
	}
}

// --- Helpers ---

func toGiftTaxResponse(id uuid.UUID, b model.TaxBreakdown) GiftTaxResponse {
	return GiftTaxResponse{
		CalculationID:        id.String(),
		LawConfigured:        b.LawConfigured,
		Law:                  b.Law,
		RecipientName:        b.RecipientName,
		GiftDate:             b.GiftDate.Format("2006-01-02"),
		Relationship:         string(b.Relationship),
		ResidencyStatus:      string(b.ResidencyStatus),
		PropertyType:         string(b.PropertyType),
		PropertyValue:        b.PropertyValue.String(),
		DebtAssumed:          b.DebtAssumed.String(),
		PriorGifts:           b.PriorGifts.String(),
		NetGift:              b.NetGift.String(),
		BasicDeductionLimit:  b.BasicDeductionLimit.String(),
		PriorGiftsAdjustment: b.PriorGiftsAdjustment.String(),
		BasicDeduction:       b.BasicDeduction.String(),
		TaxableBase:          b.TaxableBase.String(),
		AppliedRate:          optionalString(b.AppliedRate),
		ProgressiveDeduction: optionalString(b.ProgressiveDeduction),
		TaxDue:               optionalString(b.TaxDue),
		Notes:                b.Notes,
	}
}

func optionalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func (s *giftTaxService) writeAuditLog(ctx context.Context, userID string, b model.TaxBreakdown, res GiftTaxResponse) {
	if s.auditRepo == nil {
		return
	}

	details, _ := json.Marshal(res)
	taxableBase := b.TaxableBase
	entry := model.AuditLog{
		UserID:        userID,
		Action:        model.ActionCalculateGiftTax,
		EntityID:      res.CalculationID,
		LawConfigured: b.LawConfigured,
		TaxableBase:   &taxableBase,
		TaxDue:        b.TaxDue,
		Details:       string(details),
	}
	if b.Law != nil {
		entry.LawVersion = b.Law.Version
	}

	// Best-effort: the calculation result is returned even if this fails
	if err := s.auditRepo.Log(ctx, &entry); err != nil {
		logger.FromContextOr(ctx, s.log).Warn("failed to write calculation audit log", "calculation_id", res.CalculationID, "error", err)
	}
}
