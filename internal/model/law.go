package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrDeductionNotFound  = errors.New("no basic deduction entry")
	ErrDeductionMalformed = errors.New("basic deduction entry is not a number")
)

// LawNumber keeps the literal text of a numeric law table field so it can be
// turned into an exact decimal on access.
type LawNumber struct {
	Raw    string
	Set    bool
	Scalar bool
}

// UnmarshalYAML records the scalar text; non-scalar nodes are kept as invalid.
func (n *LawNumber) UnmarshalYAML(node *yaml.Node) error {
	n.Set = true
	if node.Kind == yaml.ScalarNode && node.ShortTag() != "!!null" {
		n.Scalar = true
		n.Raw = strings.TrimSpace(node.Value)
	}
	return nil
}

// Num builds a LawNumber from literal text
func Num(raw string) LawNumber {
	return LawNumber{Raw: raw, Set: true, Scalar: true}
}

// Decimal returns the exact value. ok is false when the field is absent,
// null, not a scalar or not numeric.
func (n LawNumber) Decimal() (decimal.Decimal, bool) {
	if !n.Set || !n.Scalar || n.Raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(n.Raw, "_", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// LawMetadata describes the source of a law table
type LawMetadata struct {
	Version      string `yaml:"version" json:"version,omitempty"`
	Reference    string `yaml:"reference" json:"reference,omitempty"`
	ReferenceURL string `yaml:"reference_url" json:"reference_url,omitempty"`
}

func (m LawMetadata) IsZero() bool {
	return m.Version == "" && m.Reference == "" && m.ReferenceURL == ""
}

// RawBracket is one progressive rate row as written in the table. Max is
// optional; an absent Max means the bracket is unbounded.
type RawBracket struct {
	Min       LawNumber `yaml:"min"`
	Max       LawNumber `yaml:"max"`
	Rate      LawNumber `yaml:"rate"`
	Deduction LawNumber `yaml:"deduction"`
}

// LawTable is the versioned rule table. It is read-only once loaded.
type LawTable struct {
	Metadata         LawMetadata                              `yaml:"metadata"`
	BasicDeduction   map[Residency]map[Relationship]LawNumber `yaml:"basic_deduction"`
	ProgressiveRates []RawBracket                             `yaml:"progressive_rates"`
}

func (t *LawTable) IsEmpty() bool {
	return t == nil || (t.Metadata.IsZero() && len(t.BasicDeduction) == 0 && len(t.ProgressiveRates) == 0)
}

// DeductionLimit looks up basic_deduction[residency][relationship].
func (t *LawTable) DeductionLimit(residency Residency, relationship Relationship) (decimal.Decimal, error) {
	if t == nil {
		return decimal.Zero, ErrDeductionNotFound
	}
	byRelation, ok := t.BasicDeduction[residency]
	if !ok {
		return decimal.Zero, ErrDeductionNotFound
	}
	entry, ok := byRelation[relationship]
	if !ok {
		return decimal.Zero, ErrDeductionNotFound
	}
	limit, ok := entry.Decimal()
	if !ok {
		return decimal.Zero, ErrDeductionMalformed
	}
	return limit, nil
}

// LawContext wraps a loaded table with its usability flag. A nil Table with
// Configured=false means no table was found.
type LawContext struct {
	Table      *LawTable
	Configured bool
	Source     string
	Problem    string
	LoadedAt   time.Time
}

// Usable reports whether computation may use the table at all
func (c LawContext) Usable() bool {
	return c.Configured && !c.Table.IsEmpty()
}

// Metadata returns the table metadata, or nil when there is none
func (c LawContext) Metadata() *LawMetadata {
	if c.Table == nil || c.Table.Metadata.IsZero() {
		return nil
	}
	m := c.Table.Metadata
	return &m
}
