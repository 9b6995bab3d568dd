// Package session implements the interactive admission and billing shell.
//
// The shell is a small state machine: the main menu either starts an
// admission flow or exits. An admission collects the patient facts, admits
// the patient (assigning the next sequential ID), registers the bill, and
// returns to the menu. Nothing is retained between admissions except the
// ID counter and the subscriber list, both owned by the session.
package session

import (
	"io"

	"go.uber.org/zap"

	"hospital-billing/core/billing"
	"hospital-billing/core/money"
	"hospital-billing/core/notify"
	"hospital-billing/core/patient"
	"hospital-billing/core/ui"
	"hospital-billing/internal/errors"
	"hospital-billing/internal/logging"
)

// State is a shell state
type State int

const (
	// StateMainMenu shows the menu and reads a choice
	StateMainMenu State = iota

	// StateAdmission runs the admission and billing flow
	StateAdmission

	// StateExit terminates the session
	StateExit
)

// Options configures a session
type Options struct {
	// HospitalName is shown in the banner
	HospitalName string

	// In is the interactive input source (stdin in production)
	In io.Reader

	// Out is the terminal writer
	Out *ui.Writer

	// Registry assigns patient IDs; a fresh one is created when nil
	Registry *patient.Registry

	// Schemes is the billing scheme registry; built-ins when nil
	Schemes *billing.Schemes

	// Publisher receives bill notifications; an empty one when nil
	Publisher *notify.Publisher

	// Currency is the billing currency
	Currency money.Currency
}

// Session is one run of the interactive shell
type Session struct {
	hospitalName string
	out          *ui.Writer
	prompt       *ui.Prompter
	registry     *patient.Registry
	schemes      *billing.Schemes
	biller       *billing.Biller
}

// New creates a session
func New(opts Options) *Session {
	if opts.Out == nil {
		opts.Out = ui.NewWriter(nil, false)
	}
	if opts.Registry == nil {
		opts.Registry = patient.NewRegistry(patient.DefaultStartingID)
	}
	if opts.Schemes == nil {
		opts.Schemes = billing.DefaultSchemes()
	}
	if opts.Publisher == nil {
		opts.Publisher = notify.NewPublisher()
	}
	if opts.Currency == "" {
		opts.Currency = money.CurrencyUSD
	}
	if opts.HospitalName == "" {
		opts.HospitalName = "Hospital Billing"
	}

	return &Session{
		hospitalName: opts.HospitalName,
		out:          opts.Out,
		prompt:       ui.NewPrompter(opts.In, opts.Out),
		registry:     opts.Registry,
		schemes:      opts.Schemes,
		biller:       billing.NewBiller(opts.Out, opts.Publisher, opts.Currency),
	}
}

// Run drives the state machine until exit. Input exhaustion (EOF) also
// ends the session.
func (s *Session) Run() error {
	s.out.Banner(s.hospitalName, 46)

	for state := StateMainMenu; state != StateExit; {
		switch state {
		case StateMainMenu:
			state = s.mainMenu()
		case StateAdmission:
			state = s.admission()
		}
	}

	logging.Debug("session ended", zap.Int("next_patient_id", s.registry.NextID()))
	return nil
}

// mainMenu reads one choice. "2" exits; anything else, including invalid
// input, starts an admission.
func (s *Session) mainMenu() State {
	s.out.Println("")
	s.out.Println("1. Admit and Bill Patient")
	s.out.Println("2. Exit")

	choice, err := s.prompt.ReadLine("Select an option: ")
	if err != nil {
		return StateExit
	}
	if choice == "2" {
		return StateExit
	}
	return StateAdmission
}

// admission collects patient facts, admits, bills, and pauses.
// A malformed numeric field cancels the admission without consuming a
// patient ID and returns to the main menu.
func (s *Session) admission() State {
	name, err := s.prompt.ReadLine("Patient Name: ")
	if err != nil {
		return StateExit
	}

	kindCode, err := s.prompt.ReadLine("Patient Type (1 = Inpatient, 2 = Outpatient): ")
	if err != nil {
		return StateExit
	}

	var admitted patient.Patient
	if kindCode == "1" {
		admitted, err = s.admitInpatient(name)
	} else {
		// Unrecognized type codes fall back to outpatient.
		admitted, err = s.admitOutpatient(name)
	}
	if err != nil {
		if errors.IsType(err, errors.TypeInput) {
			s.cancel(err)
			return StateMainMenu
		}
		// Read failure (EOF): end the session.
		return StateExit
	}

	schemeCode, err := s.prompt.ReadLine("Billing Scheme (1 = Normal, 2 = Corporate Insurance, 3 = Senior Citizen Discount): ")
	if err != nil {
		return StateExit
	}
	scheme := s.schemes.Lookup(schemeCode)

	s.biller.RegisterBill(admitted, scheme)
	s.prompt.Pause()
	return StateMainMenu
}

func (s *Session) admitInpatient(name string) (patient.Patient, error) {
	daysText, err := s.prompt.ReadLine("Days Admitted: ")
	if err != nil {
		return nil, err
	}
	days, err := ParseDays(daysText)
	if err != nil {
		return nil, err
	}

	rateText, err := s.prompt.ReadLine("Daily Room Rate: ")
	if err != nil {
		return nil, err
	}
	rate, err := ParseMoney("daily room rate", rateText)
	if err != nil {
		return nil, err
	}

	return s.registry.AdmitInpatient(name, days, rate), nil
}

func (s *Session) admitOutpatient(name string) (patient.Patient, error) {
	feeText, err := s.prompt.ReadLine("Consultation Fee: ")
	if err != nil {
		return nil, err
	}
	fee, err := ParseMoney("consultation fee", feeText)
	if err != nil {
		return nil, err
	}

	return s.registry.AdmitOutpatient(name, fee), nil
}

// cancel aborts the current admission and reports why. No bill is
// produced and the ID counter is untouched.
func (s *Session) cancel(err error) {
	s.out.Error("Admission cancelled: %v", err)
	logging.Warn("admission cancelled", zap.Error(err))
}
