package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ActionCalculateGiftTax = "CALCULATE_GIFT_TAX"
	ActionReloadLawTable   = "RELOAD_LAW_TABLE"
)

// AuditLog tracks calculations and law table changes for operators. It is
// never read back into a computation.
type AuditLog struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string           `gorm:"type:varchar(64);index" json:"user_id"` // JWT subject, empty for anonymous calculations
	Action        string           `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID      string           `gorm:"type:varchar(64);index" json:"entity_id"` // calculation id or law version
	LawVersion    string           `gorm:"type:varchar(64)" json:"law_version"`
	LawConfigured bool             `json:"law_configured"`
	TaxableBase   *decimal.Decimal `gorm:"type:decimal(20,2)" json:"taxable_base"`
	TaxDue        *decimal.Decimal `gorm:"type:decimal(20,2)" json:"tax_due"`
	Details       string           `gorm:"type:jsonb" json:"details"` // serialized breakdown or reload summary
	CreatedAt     time.Time        `gorm:"index" json:"created_at"`
}
