package calculator

import (
	"sort"

	"gifttax/internal/model"

	"github.com/shopspring/decimal"
)

// Bracket is a progressive rate row with exact values. A nil Max is
// unbounded.
type Bracket struct {
	Min       decimal.Decimal
	Max       *decimal.Decimal
	Rate      decimal.Decimal
	Deduction decimal.Decimal
}

// Contains reports whether base lies in [Min, Max]
func (b Bracket) Contains(base decimal.Decimal) bool {
	if base.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || base.LessThanOrEqual(*b.Max)
}

// NormalizeBrackets converts the table rows to exact decimals, drops rows with
// a missing or non-numeric min, rate or deduction (or a non-numeric max), and
// sorts the rest by Min ascending.
func NormalizeBrackets(rows []model.RawBracket) []Bracket {
	out := make([]Bracket, 0, len(rows))
	for _, row := range rows {
		b, ok := normalizeBracket(row)
		if ok {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Min.LessThan(out[j].Min)
	})
	return out
}

func normalizeBracket(row model.RawBracket) (Bracket, bool) {
	minimum, ok := row.Min.Decimal()
	if !ok {
		return Bracket{}, false
	}
	rate, ok := row.Rate.Decimal()
	if !ok {
		return Bracket{}, false
	}
	deduction, ok := row.Deduction.Decimal()
	if !ok {
		return Bracket{}, false
	}

	b := Bracket{Min: minimum, Rate: rate, Deduction: deduction}
	if row.Max.Set {
		maximum, ok := row.Max.Decimal()
		if !ok {
			return Bracket{}, false
		}
		b.Max = &maximum
	}
	return b, true
}

// FindBracket returns the first bracket containing base. Gaps in the table
// are not repaired.
func FindBracket(brackets []Bracket, base decimal.Decimal) (Bracket, bool) {
	for _, b := range brackets {
		if b.Contains(base) {
			return b, true
		}
	}
	return Bracket{}, false
}
