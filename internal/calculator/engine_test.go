package calculator

import (
	"fmt"
	"testing"
	"time"

	"gifttax/internal/lawtable"
	"gifttax/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !got.Equal(dec(want)) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got.String()), msgAndArgs...)
	}
}

func requireDecPtr(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, got)
	assertDec(t, want, *got)
}

func korLaw(t *testing.T) model.LawContext {
	t.Helper()
	lc := lawtable.Load("../../configs/law_tables/kor_2025.yaml")
	require.True(t, lc.Configured, lc.Problem)
	return lc
}

func gift(mods ...func(*model.GiftRecord)) model.GiftRecord {
	g := model.GiftRecord{
		RecipientName:   "홍길동",
		GiftDate:        time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Relationship:    model.RelationLinealDescendantAdult,
		ResidencyStatus: model.ResidencyResident,
		PropertyType:    model.PropertyCash,
		PropertyValue:   decimal.Zero,
		DebtAssumed:     decimal.Zero,
		PriorGifts:      decimal.Zero,
	}
	for _, m := range mods {
		m(&g)
	}
	return g
}

func value(v string) func(*model.GiftRecord) {
	return func(g *model.GiftRecord) { g.PropertyValue = dec(v) }
}

func debt(v string) func(*model.GiftRecord) {
	return func(g *model.GiftRecord) { g.DebtAssumed = dec(v) }
}

func prior(v string) func(*model.GiftRecord) {
	return func(g *model.GiftRecord) { g.PriorGifts = dec(v) }
}

func relation(r model.Relationship) func(*model.GiftRecord) {
	return func(g *model.GiftRecord) { g.Relationship = r }
}

func residency(r model.Residency) func(*model.GiftRecord) {
	return func(g *model.GiftRecord) { g.ResidencyStatus = r }
}

func TestComputeAdultDescendantWithinDeduction(t *testing.T) {
	b := Compute(gift(value("50000000")), korLaw(t))

	assert.True(t, b.LawConfigured)
	assertDec(t, "50000000", b.BasicDeduction)
	assertDec(t, "0", b.TaxableBase)
	requireDecPtr(t, "0", b.TaxDue)
	assert.Nil(t, b.AppliedRate, "no bracket is matched for a zero base")
	assert.Nil(t, b.ProgressiveDeduction)
}

func TestComputeFirstBracketCeiling(t *testing.T) {
	b := Compute(gift(value("150000000")), korLaw(t))

	assertDec(t, "100000000", b.TaxableBase)
	requireDecPtr(t, "0.1", b.AppliedRate)
	requireDecPtr(t, "10000000", b.TaxDue)
}

func TestComputeSecondBracketProgressiveDeduction(t *testing.T) {
	b := Compute(gift(value("160000000")), korLaw(t))

	assertDec(t, "110000000", b.TaxableBase)
	requireDecPtr(t, "0.2", b.AppliedRate)
	requireDecPtr(t, "10000000", b.ProgressiveDeduction)
	requireDecPtr(t, "12000000", b.TaxDue)
	assert.Contains(t, b.Notes, "과세표준 110,000,000원 × 세율 20% − 누진공제 10,000,000원 = 산출세액 12,000,000원")
}

func TestComputeSpouseFourthBracket(t *testing.T) {
	b := Compute(gift(relation(model.RelationSpouse), value("3500000000")), korLaw(t))

	assertDec(t, "600000000", b.BasicDeduction)
	assertDec(t, "2900000000", b.TaxableBase)
	requireDecPtr(t, "0.4", b.AppliedRate)
	requireDecPtr(t, "1000000000", b.TaxDue)
}

func TestComputeMinorWithPriorGifts(t *testing.T) {
	b := Compute(gift(relation(model.RelationLinealDescendantMinor), value("30000000"), prior("5000000")), korLaw(t))

	assertDec(t, "20000000", b.BasicDeductionLimit)
	assertDec(t, "5000000", b.PriorGiftsAdjustment)
	assertDec(t, "15000000", b.BasicDeduction)
	requireDecPtr(t, "1500000", b.TaxDue)
	require.NotEmpty(t, b.Notes)
	assert.Contains(t, b.Notes[len(b.Notes)-1], "5,000,000원")
}

func TestComputePriorGiftsCappedAtLimit(t *testing.T) {
	b := Compute(gift(value("40000000"), prior("80000000")), korLaw(t))

	assertDec(t, "50000000", b.PriorGiftsAdjustment)
	assertDec(t, "0", b.BasicDeduction)
	assertDec(t, "40000000", b.TaxableBase)
	requireDecPtr(t, "4000000", b.TaxDue)
}

func TestComputeDebtExceedsValue(t *testing.T) {
	b := Compute(gift(value("10000000"), debt("12000000")), korLaw(t))

	assertDec(t, "0", b.NetGift)
	assertDec(t, "0", b.TaxableBase)
	requireDecPtr(t, "0", b.TaxDue)
}

func TestComputeNonResidentOthers(t *testing.T) {
	b := Compute(gift(residency(model.ResidencyNonResident), relation(model.RelationOthers), value("60000000")), korLaw(t))

	assertDec(t, "10000000", b.BasicDeductionLimit)
	assertDec(t, "50000000", b.TaxableBase)
	requireDecPtr(t, "5000000", b.TaxDue)
	require.NotNil(t, b.Law)
	assert.Equal(t, "2025-01-01", b.Law.Version)
}

func TestComputeEchoesInput(t *testing.T) {
	g := gift(value("123"), debt("3"), prior("7"))
	g.PropertyType = model.PropertyRealEstate
	b := Compute(g, korLaw(t))

	assert.Equal(t, g.RecipientName, b.RecipientName)
	assert.Equal(t, g.GiftDate, b.GiftDate)
	assert.Equal(t, g.Relationship, b.Relationship)
	assert.Equal(t, g.ResidencyStatus, b.ResidencyStatus)
	assert.Equal(t, model.PropertyRealEstate, b.PropertyType)
	assertDec(t, "123", b.PropertyValue)
	assertDec(t, "3", b.DebtAssumed)
	assertDec(t, "7", b.PriorGifts)
}

func TestComputeRoundsHalfUp(t *testing.T) {
	law := model.LawContext{Configured: true, Table: &model.LawTable{
		BasicDeduction: map[model.Residency]map[model.Relationship]model.LawNumber{
			model.ResidencyResident: {model.RelationLinealDescendantAdult: model.Num("0")},
		},
		ProgressiveRates: []model.RawBracket{
			{Min: model.Num("0"), Rate: model.Num("0.1"), Deduction: model.Num("0")},
		},
	}}

	tests := []struct {
		value string
		want  string
	}{
		{value: "15", want: "2"},
		{value: "14", want: "1"},
		{value: "25", want: "3"},
		{value: "1", want: "0"},
		{value: "5", want: "1"},
		{value: "104.9", want: "10"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			b := Compute(gift(value(tt.value)), law)
			requireDecPtr(t, tt.want, b.TaxDue)
		})
	}
}

func TestComputeDegradedLaw(t *testing.T) {
	tests := []struct {
		name string
		law  model.LawContext
		note string
	}{
		{name: "missing", law: lawtable.Load("testdata/does-not-exist.yaml"), note: "사용할 수 없어"},
		{name: "placeholder", law: lawtable.Load("../../configs/law_tables/template.yaml"), note: "PLACEHOLDER"},
		{name: "empty", law: model.LawContext{Configured: true, Table: &model.LawTable{}}, note: "비어 있어"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []string{"0", "50000000", "3500000000"} {
				b := Compute(gift(value(v), prior("1000")), tt.law)

				assert.False(t, b.LawConfigured)
				assert.Nil(t, b.TaxDue)
				assert.Nil(t, b.AppliedRate)
				assertDec(t, "0", b.BasicDeductionLimit)
				assertDec(t, "0", b.PriorGiftsAdjustment)
				assertDec(t, "0", b.BasicDeduction)
				assertDec(t, "0", b.TaxableBase)
				assertDec(t, v, b.NetGift)
				require.Len(t, b.Notes, 1)
				assert.Contains(t, b.Notes[0], tt.note)
			}
		})
	}
}

func TestComputeDeductionGap(t *testing.T) {
	table := &model.LawTable{
		Metadata: model.LawMetadata{Version: "test"},
		BasicDeduction: map[model.Residency]map[model.Relationship]model.LawNumber{
			model.ResidencyResident: {
				model.RelationSpouse: model.Num("six hundred million"),
			},
		},
		ProgressiveRates: []model.RawBracket{
			{Min: model.Num("0"), Rate: model.Num("0.1"), Deduction: model.Num("0")},
		},
	}
	law := model.LawContext{Configured: true, Table: table}

	t.Run("missing relationship", func(t *testing.T) {
		b := Compute(gift(value("100000000")), law)

		assert.False(t, b.LawConfigured)
		assert.Nil(t, b.TaxDue)
		assertDec(t, "100000000", b.NetGift)
		assertDec(t, "0", b.TaxableBase)
		require.Len(t, b.Notes, 1)
		assert.Contains(t, b.Notes[0], "resident/lineal_descendant_adult")
		require.NotNil(t, b.Law)
		assert.Equal(t, "test", b.Law.Version)
	})

	t.Run("missing residency", func(t *testing.T) {
		b := Compute(gift(residency(model.ResidencyNonResident), value("100000000")), law)
		assert.False(t, b.LawConfigured)
		assert.Nil(t, b.TaxDue)
	})

	t.Run("malformed limit", func(t *testing.T) {
		b := Compute(gift(relation(model.RelationSpouse), value("100000000")), law)
		assert.False(t, b.LawConfigured)
		assert.Nil(t, b.TaxDue)
		require.Len(t, b.Notes, 1)
		assert.Contains(t, b.Notes[0], "숫자가 아니어서")
	})
}

func TestComputeNoMatchingBracket(t *testing.T) {
	law := model.LawContext{Configured: true, Table: &model.LawTable{
		BasicDeduction: map[model.Residency]map[model.Relationship]model.LawNumber{
			model.ResidencyResident: {model.RelationLinealDescendantAdult: model.Num("0")},
		},
		ProgressiveRates: []model.RawBracket{
			{Min: model.Num("0"), Max: model.Num("100"), Rate: model.Num("0.1"), Deduction: model.Num("0")},
			{Min: model.Num("200"), Max: model.Num("oops"), Rate: model.Num("0.2"), Deduction: model.Num("10")},
		},
	}}

	b := Compute(gift(value("150"), prior("10")), law)

	assert.True(t, b.LawConfigured)
	assertDec(t, "150", b.TaxableBase)
	assert.Nil(t, b.TaxDue)
	assert.Nil(t, b.AppliedRate)
	require.Len(t, b.Notes, 2)
	assert.Contains(t, b.Notes[0], "150원")
	assert.Contains(t, b.Notes[1], "10원", "prior gift note is kept when no bracket matches")
}

func TestComputeNetGiftProperty(t *testing.T) {
	law := korLaw(t)
	tests := []struct{ value, debt, net string }{
		{"100", "0", "100"},
		{"100", "100", "0"},
		{"100", "40.5", "59.5"},
		{"100", "100.01", "0"},
		{"0", "5", "0"},
	}
	for _, tt := range tests {
		b := Compute(gift(value(tt.value), debt(tt.debt)), law)
		assertDec(t, tt.net, b.NetGift, "value %s debt %s", tt.value, tt.debt)
	}
}

func TestComputeDeductionInvariants(t *testing.T) {
	law := korLaw(t)
	for _, r := range []model.Relationship{
		model.RelationSpouse,
		model.RelationLinealAscendant,
		model.RelationLinealDescendantAdult,
		model.RelationLinealDescendantMinor,
		model.RelationOthers,
	} {
		for _, p := range []string{"0", "1", "10000000", "20000000", "600000000", "900000000"} {
			b := Compute(gift(relation(r), prior(p), value("700000000")), law)

			wantAdj := decimal.Min(dec(p), b.BasicDeductionLimit)
			assertDec(t, wantAdj.String(), b.PriorGiftsAdjustment, "%s prior %s", r, p)
			wantDeduction := floorZero(b.BasicDeductionLimit.Sub(wantAdj))
			assertDec(t, wantDeduction.String(), b.BasicDeduction)
			wantBase := floorZero(b.NetGift.Sub(b.BasicDeduction))
			assertDec(t, wantBase.String(), b.TaxableBase)
		}
	}
}

func TestComputeMonotonic(t *testing.T) {
	law := korLaw(t)
	for _, r := range []model.Relationship{model.RelationSpouse, model.RelationLinealDescendantMinor, model.RelationOthers} {
		last := decimal.Zero
		for v := int64(0); v <= 5_000_000_000; v += 25_000_000 {
			b := Compute(gift(relation(r), prior("3000000"), func(g *model.GiftRecord) {
				g.PropertyValue = decimal.NewFromInt(v)
			}), law)
			require.NotNil(t, b.TaxDue, "%s at %d", r, v)
			assert.False(t, b.TaxDue.LessThan(last), "%s: tax decreased at %d", r, v)
			last = *b.TaxDue
		}
	}
}

func TestWon(t *testing.T) {
	assert.Equal(t, "0원", won(decimal.Zero))
	assert.Equal(t, "1,234,567원", won(dec("1234567")))
	assert.Equal(t, "1,000.25원", won(dec("1000.25")))
}
