// Package calculator validates gift submissions and computes gift tax
// against a law table.
package calculator

import (
	"errors"
	"fmt"

	"gifttax/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Compute produces the tax breakdown for a validated gift. It has no side
// effects and never fails; configuration problems show up as
// LawConfigured=false, a nil TaxDue and explanatory notes.
func Compute(gift model.GiftRecord, law model.LawContext) model.TaxBreakdown {
	b := model.TaxBreakdown{
		LawConfigured:   law.Configured,
		Law:             law.Metadata(),
		RecipientName:   gift.RecipientName,
		GiftDate:        gift.GiftDate,
		Relationship:    gift.Relationship,
		ResidencyStatus: gift.ResidencyStatus,
		PropertyType:    gift.PropertyType,
		PropertyValue:   gift.PropertyValue,
		DebtAssumed:     gift.DebtAssumed,
		PriorGifts:      gift.PriorGifts,
		Notes:           []string{},
	}

	b.NetGift = floorZero(gift.PropertyValue.Sub(gift.DebtAssumed))

	if !law.Usable() {
		b.LawConfigured = false
		b.Notes = append(b.Notes, unavailableNote(law))
		return b
	}

	limit, err := law.Table.DeductionLimit(gift.ResidencyStatus, gift.Relationship)
	if err != nil {
		b.LawConfigured = false
		b.Notes = append(b.Notes, deductionGapNote(gift, err))
		return b
	}

	b.BasicDeductionLimit = limit
	b.PriorGiftsAdjustment = decimal.Min(gift.PriorGifts, limit)
	b.BasicDeduction = floorZero(limit.Sub(b.PriorGiftsAdjustment))
	b.TaxableBase = floorZero(b.NetGift.Sub(b.BasicDeduction))

	switch {
	case b.TaxableBase.IsZero():
		zero := decimal.Zero
		b.TaxDue = &zero
		b.Notes = append(b.Notes, "과세표준이 0원이므로 납부할 세액이 없습니다.")
	default:
		applyBracket(&b, NormalizeBrackets(law.Table.ProgressiveRates))
	}

	if gift.PriorGifts.IsPositive() {
		b.Notes = append(b.Notes, fmt.Sprintf(
			"최근 10년 내 동일인 증여액 %s이 기본 공제 한도에서 차감되었습니다 (차감액 %s).",
			won(gift.PriorGifts), won(b.PriorGiftsAdjustment)))
	}

	return b
}

func applyBracket(b *model.TaxBreakdown, brackets []Bracket) {
	bracket, ok := FindBracket(brackets, b.TaxableBase)
	if !ok {
		b.Notes = append(b.Notes, fmt.Sprintf(
			"과세표준 %s에 해당하는 누진세율 구간이 법규 테이블에 없어 세액을 계산하지 않습니다.",
			won(b.TaxableBase)))
		return
	}

	rate := bracket.Rate
	deduction := bracket.Deduction
	tax := floorZero(b.TaxableBase.Mul(rate).Sub(deduction)).Round(0)

	b.AppliedRate = &rate
	b.ProgressiveDeduction = &deduction
	b.TaxDue = &tax
	b.Notes = append(b.Notes, fmt.Sprintf(
		"과세표준 %s × 세율 %s%% − 누진공제 %s = 산출세액 %s",
		won(b.TaxableBase), rate.Mul(hundred).String(), won(deduction), won(tax)))
}

func unavailableNote(law model.LawContext) string {
	switch {
	case law.Table == nil:
		return "법규 테이블을 사용할 수 없어 세액을 계산하지 않습니다."
	case !law.Configured:
		return "법규 테이블이 PLACEHOLDER 상태이므로 세액을 계산하지 않습니다."
	default:
		return "법규 테이블이 비어 있어 세액을 계산하지 않습니다."
	}
}

func deductionGapNote(gift model.GiftRecord, err error) string {
	key := string(gift.ResidencyStatus) + "/" + string(gift.Relationship)
	if errors.Is(err, model.ErrDeductionMalformed) {
		return "법규 테이블의 기본 공제 한도(" + key + ")가 숫자가 아니어서 세액을 계산하지 않습니다."
	}
	return "법규 테이블에 기본 공제 한도(" + key + ")가 없어 세액을 계산하지 않습니다."
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// won formats an amount with thousands separators, keeping any fraction.
func won(d decimal.Decimal) string {
	whole := d.Truncate(0)
	s := humanize.BigComma(whole.BigInt())
	if frac := d.Sub(whole).Abs(); !frac.IsZero() {
		s += frac.String()[1:]
	}
	return s + "원"
}
