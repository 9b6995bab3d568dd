// Package billing applies billing schemes to patient charges and renders
// the resulting bill.
package billing

import (
	"github.com/shopspring/decimal"
)

// Scheme is a pure billing policy: a multiplier applied to the base charge
type Scheme struct {
	// Code selects the scheme at the prompt
	Code string `json:"code"`

	// Name is the human-readable scheme name printed on the bill
	Name string `json:"name"`

	// Multiplier is applied to the base charge
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Apply computes the final charge for a base charge
func (s Scheme) Apply(base decimal.Decimal) decimal.Decimal {
	return base.Mul(s.Multiplier)
}

// Normal is the identity scheme: final = base
func Normal() Scheme {
	return Scheme{
		Code:       "1",
		Name:       "Normal",
		Multiplier: decimal.NewFromInt(1),
	}
}

// CorporateInsurance bills 70% of the base charge
func CorporateInsurance() Scheme {
	return Scheme{
		Code:       "2",
		Name:       "Corporate Insurance",
		Multiplier: decimal.NewFromFloat(0.70),
	}
}

// SeniorCitizenDiscount bills 85% of the base charge
func SeniorCitizenDiscount() Scheme {
	return Scheme{
		Code:       "3",
		Name:       "Senior Citizen Discount",
		Multiplier: decimal.NewFromFloat(0.85),
	}
}

// Schemes is an ordered registry of billing schemes keyed by code.
// Lookup of an unrecognized code resolves to the fallback scheme;
// default-on-unrecognized is policy, not an error.
type Schemes struct {
	byCode   map[string]Scheme
	order    []string
	fallback Scheme
}

// NewSchemes creates a registry with the given fallback scheme registered
func NewSchemes(fallback Scheme) *Schemes {
	s := &Schemes{
		byCode:   make(map[string]Scheme),
		fallback: fallback,
	}
	s.Register(fallback)
	return s
}

// DefaultSchemes returns the built-in scheme registry
func DefaultSchemes() *Schemes {
	s := NewSchemes(Normal())
	s.Register(CorporateInsurance())
	s.Register(SeniorCitizenDiscount())
	return s
}

// Register adds a scheme, replacing any existing scheme with the same code
func (s *Schemes) Register(scheme Scheme) {
	if _, exists := s.byCode[scheme.Code]; !exists {
		s.order = append(s.order, scheme.Code)
	}
	s.byCode[scheme.Code] = scheme
}

// Lookup resolves a scheme code, falling back for unrecognized codes
func (s *Schemes) Lookup(code string) Scheme {
	if scheme, ok := s.byCode[code]; ok {
		return scheme
	}
	return s.fallback
}

// Fallback returns the scheme used for unrecognized codes
func (s *Schemes) Fallback() Scheme {
	return s.fallback
}

// All returns the schemes in registration order
func (s *Schemes) All() []Scheme {
	all := make([]Scheme, 0, len(s.order))
	for _, code := range s.order {
		all = append(all, s.byCode[code])
	}
	return all
}
