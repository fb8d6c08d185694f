package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Relationship of the recipient to the donor
type Relationship string

const (
	RelationSpouse                Relationship = "spouse"
	RelationLinealAscendant       Relationship = "lineal_ascendant"
	RelationLinealDescendantAdult Relationship = "lineal_descendant_adult"
	RelationLinealDescendantMinor Relationship = "lineal_descendant_minor"
	RelationOthers                Relationship = "others"
)

// Residency status of the recipient
type Residency string

const (
	ResidencyResident    Residency = "resident"
	ResidencyNonResident Residency = "non_resident"
)

// PropertyType is informational only; it never changes the computed tax.
type PropertyType string

const (
	PropertyCash       PropertyType = "cash"
	PropertyRealEstate PropertyType = "real_estate"
	PropertyStock      PropertyType = "stock"
	PropertyOther      PropertyType = "other"
)

// Option is a selectable value with its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var RelationshipOptions = []Option{
	{Value: string(RelationSpouse), Label: "배우자"},
	{Value: string(RelationLinealAscendant), Label: "직계존속"},
	{Value: string(RelationLinealDescendantAdult), Label: "직계비속-성년"},
	{Value: string(RelationLinealDescendantMinor), Label: "직계비속-미성년"},
	{Value: string(RelationOthers), Label: "기타"},
}

var ResidencyOptions = []Option{
	{Value: string(ResidencyResident), Label: "거주자"},
	{Value: string(ResidencyNonResident), Label: "비거주자"},
}

var PropertyTypeOptions = []Option{
	{Value: string(PropertyCash), Label: "현금"},
	{Value: string(PropertyRealEstate), Label: "부동산"},
	{Value: string(PropertyStock), Label: "주식"},
	{Value: string(PropertyOther), Label: "기타"},
}

func (r Relationship) Valid() bool {
	return hasOption(RelationshipOptions, string(r))
}

func (r Residency) Valid() bool {
	return hasOption(ResidencyOptions, string(r))
}

func (p PropertyType) Valid() bool {
	return hasOption(PropertyTypeOptions, string(p))
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Scalar is a loosely typed input value. It accepts JSON strings, numbers
// and null, and binds from plain form values.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	// Numbers and booleans keep their literal text so decimals stay exact.
	*s = Scalar(raw)
	return nil
}

// GiftSubmission is the raw gift form as received from the client
type GiftSubmission struct {
	RecipientName   Scalar `json:"recipient_name" form:"recipient_name"`
	GiftDate        Scalar `json:"gift_date" form:"gift_date"`
	Relationship    Scalar `json:"relationship" form:"relationship"`
	ResidencyStatus Scalar `json:"residency_status" form:"residency_status"`
	PropertyType    Scalar `json:"property_type" form:"property_type"`
	PropertyValue   Scalar `json:"property_value" form:"property_value"`
	DebtAssumed     Scalar `json:"debt_assumed" form:"debt_assumed"`
	PriorGifts      Scalar `json:"prior_gifts" form:"prior_gifts"`
}

// GiftRecord is a validated gift. Construct it through calculator.ParseGift.
type GiftRecord struct {
	RecipientName   string
	GiftDate        time.Time
	Relationship    Relationship
	ResidencyStatus Residency
	PropertyType    PropertyType
	PropertyValue   decimal.Decimal
	DebtAssumed     decimal.Decimal
	PriorGifts      decimal.Decimal // within the lookback window, same donor
}
