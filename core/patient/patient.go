// Package patient defines the patient variants and the admission registry.
// A patient computes its own base charge from its treatment facts; the
// variant set is closed (inpatient, outpatient).
package patient

import (
	"github.com/shopspring/decimal"
)

// Kind labels the patient variant
type Kind string

const (
	// KindInpatient is an admitted patient billed per day
	KindInpatient Kind = "Inpatient"

	// KindOutpatient is a visiting patient billed a flat consultation fee
	KindOutpatient Kind = "Outpatient"
)

// String returns the string representation
func (k Kind) String() string {
	return string(k)
}

// Patient is a billable patient
type Patient interface {
	// ID is the sequential admission identifier
	ID() int

	// Name is the patient's full name
	Name() string

	// Kind is the variant label
	Kind() Kind

	// BaseCharge computes the unmodified treatment cost from the
	// patient's own facts. Inputs are not validated; negative inputs
	// yield negative charges.
	BaseCharge() decimal.Decimal
}

// admission holds the identity assigned by the registry
type admission struct {
	id   int
	name string
}

// ID returns the admission identifier
func (a admission) ID() int {
	return a.id
}

// Name returns the patient name
func (a admission) Name() string {
	return a.name
}

// Inpatient is an admitted patient billed per day of stay
type Inpatient struct {
	admission

	// DaysAdmitted is the length of stay in days
	DaysAdmitted int

	// DailyRoomRate is the room charge per day
	DailyRoomRate decimal.Decimal
}

// Kind returns KindInpatient
func (p *Inpatient) Kind() Kind {
	return KindInpatient
}

// BaseCharge is days admitted times the daily room rate
func (p *Inpatient) BaseCharge() decimal.Decimal {
	return decimal.NewFromInt(int64(p.DaysAdmitted)).Mul(p.DailyRoomRate)
}

// Outpatient is a visiting patient billed a flat consultation fee
type Outpatient struct {
	admission

	// ConsultationFee is the flat visit charge
	ConsultationFee decimal.Decimal
}

// Kind returns KindOutpatient
func (p *Outpatient) Kind() Kind {
	return KindOutpatient
}

// BaseCharge is the consultation fee
func (p *Outpatient) BaseCharge() decimal.Decimal {
	return p.ConsultationFee
}
