package calculator

import (
	"strings"
	"time"

	"gifttax/internal/model"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// Field error codes
const (
	CodeRequired      = "required"
	CodeInvalidDate   = "invalid_date"
	CodeInvalidNumber = "invalid_number"
	CodeNegative      = "negative"
	CodeInvalidChoice = "invalid_choice"
	CodeOutOfRange    = "out_of_range"
)

// Monetary input bounds. Amounts fit a decimal(20,2) column.
const (
	maxMoneyLength         = 64
	maxMoneyIntegerDigits  = 18
	maxMoneyFractionDigits = 2
)

var codeMessages = map[string]string{
	CodeRequired:      "값을 입력해 주세요.",
	CodeInvalidDate:   "YYYY-MM-DD 형식으로 입력해 주세요.",
	CodeInvalidNumber: "숫자를 입력해 주세요.",
	CodeNegative:      "0 이상의 값을 입력해 주세요.",
	CodeInvalidChoice: "선택할 수 없는 값입니다.",
	CodeOutOfRange:    "정수 18자리, 소수 2자리 이내의 금액을 입력해 주세요.",
}

// FieldError is one problem with one submitted field
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors collects every field problem of a submission
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

type fieldCollector struct {
	errs ValidationErrors
}

func (c *fieldCollector) add(field, code string) {
	c.errs = append(c.errs, FieldError{Field: field, Code: code, Message: codeMessages[code]})
}

func (c *fieldCollector) text(field string, v model.Scalar) string {
	s := strings.TrimSpace(string(v))
	if s == "" {
		c.add(field, CodeRequired)
	}
	return s
}

func (c *fieldCollector) date(field string, v model.Scalar) time.Time {
	s := strings.TrimSpace(string(v))
	if s == "" {
		c.add(field, CodeRequired)
		return time.Time{}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		c.add(field, CodeInvalidDate)
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// money treats blank as zero and accepts thousands separators.
func (c *fieldCollector) money(field string, v model.Scalar) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(string(v)), ",", "")
	if s == "" {
		return decimal.Zero
	}
	if len(s) > maxMoneyLength {
		c.add(field, CodeOutOfRange)
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.add(field, CodeInvalidNumber)
		return decimal.Zero
	}
	if d.IsNegative() {
		c.add(field, CodeNegative)
		return decimal.Zero
	}
	if !moneyInRange(d) {
		c.add(field, CodeOutOfRange)
		return decimal.Zero
	}
	return d
}

// moneyInRange checks digit counts from the coefficient and exponent only, so
// an input like 1e1000000 is rejected without being expanded.
func moneyInRange(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := int64(d.Exponent())
	if int64(d.NumDigits())+exp > maxMoneyIntegerDigits {
		return false
	}
	if exp >= -maxMoneyFractionDigits {
		return true
	}
	// trailing zeros are bounded by the coefficient length
	if exp < -(maxMoneyFractionDigits + maxMoneyLength) {
		return false
	}
	return d.Truncate(maxMoneyFractionDigits).Equal(d)
}

func (c *fieldCollector) choice(field, value string, valid bool) {
	if value != "" && !valid {
		c.add(field, CodeInvalidChoice)
	}
}

// ParseGift coerces a raw submission into a GiftRecord. All field problems
// are reported together as ValidationErrors; the record is only built when
// there are none.
func ParseGift(in model.GiftSubmission) (model.GiftRecord, error) {
	var c fieldCollector

	name := c.text("recipient_name", in.RecipientName)
	giftDate := c.date("gift_date", in.GiftDate)

	relationship := model.Relationship(c.text("relationship", in.Relationship))
	c.choice("relationship", string(relationship), relationship.Valid())

	residency := model.Residency(c.text("residency_status", in.ResidencyStatus))
	c.choice("residency_status", string(residency), residency.Valid())

	propertyType := model.PropertyType(c.text("property_type", in.PropertyType))
	c.choice("property_type", string(propertyType), propertyType.Valid())

	propertyValue := c.money("property_value", in.PropertyValue)
	debt := c.money("debt_assumed", in.DebtAssumed)
	prior := c.money("prior_gifts", in.PriorGifts)

	if len(c.errs) > 0 {
		return model.GiftRecord{}, c.errs
	}

	return model.GiftRecord{
		RecipientName:   name,
		GiftDate:        giftDate,
		Relationship:    relationship,
		ResidencyStatus: residency,
		PropertyType:    propertyType,
		PropertyValue:   propertyValue,
		DebtAssumed:     debt,
		PriorGifts:      prior,
	}, nil
}
