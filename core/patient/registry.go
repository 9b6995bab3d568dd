// Package patient - Admission registry
package patient

import "github.com/shopspring/decimal"

// DefaultStartingID is the first patient ID assigned in a session
const DefaultStartingID = 5001

// Registry assigns sequential patient IDs within a session.
// It is owned by the session and never shared across goroutines.
type Registry struct {
	nextID int
}

// NewRegistry creates a registry starting at the given ID
func NewRegistry(startingID int) *Registry {
	if startingID <= 0 {
		startingID = DefaultStartingID
	}
	return &Registry{nextID: startingID}
}

// NextID returns the ID the next admission will receive
func (r *Registry) NextID() int {
	return r.nextID
}

// AdmitInpatient admits an inpatient and assigns the next ID
func (r *Registry) AdmitInpatient(name string, daysAdmitted int, dailyRoomRate decimal.Decimal) *Inpatient {
	return &Inpatient{
		admission:     admission{id: r.take(), name: name},
		DaysAdmitted:  daysAdmitted,
		DailyRoomRate: dailyRoomRate,
	}
}

// AdmitOutpatient admits an outpatient and assigns the next ID
func (r *Registry) AdmitOutpatient(name string, consultationFee decimal.Decimal) *Outpatient {
	return &Outpatient{
		admission:       admission{id: r.take(), name: name},
		ConsultationFee: consultationFee,
	}
}

func (r *Registry) take() int {
	id := r.nextID
	r.nextID++
	return id
}
