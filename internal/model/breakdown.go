package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxBreakdown is the outcome of one gift tax computation. Optional fields
// are nil when the corresponding step did not run.
type TaxBreakdown struct {
	LawConfigured bool
	Law           *LawMetadata

	RecipientName   string
	GiftDate        time.Time
	Relationship    Relationship
	ResidencyStatus Residency
	PropertyType    PropertyType
	PropertyValue   decimal.Decimal
	DebtAssumed     decimal.Decimal
	PriorGifts      decimal.Decimal

	NetGift              decimal.Decimal
	BasicDeductionLimit  decimal.Decimal
	PriorGiftsAdjustment decimal.Decimal
	BasicDeduction       decimal.Decimal
	TaxableBase          decimal.Decimal
	AppliedRate          *decimal.Decimal
	ProgressiveDeduction *decimal.Decimal
	TaxDue               *decimal.Decimal

	Notes []string
}
