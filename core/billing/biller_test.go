package billing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"hospital-billing/core/money"
	"hospital-billing/core/notify"
	"hospital-billing/core/patient"
	"hospital-billing/core/ui"
)

// recorder captures delivered notifications
type recorder struct {
	name     string
	messages []string
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Notify(ev notify.Event) {
	r.messages = append(r.messages, ev.Message)
}

func TestRegisterBillInpatientCorporate(t *testing.T) {
	var buf bytes.Buffer
	out := ui.NewWriter(&buf, true)

	publisher := notify.NewPublisher()
	accounts := &recorder{name: "Accounts Dept"}
	publisher.Subscribe(accounts)

	registry := patient.NewRegistry(patient.DefaultStartingID)
	p := registry.AdmitInpatient("John Smith", 3, decimal.NewFromInt(200))

	biller := NewBiller(out, publisher, money.CurrencyUSD)
	bill := biller.RegisterBill(p, CorporateInsurance())

	if !bill.BaseCharge.Equal(decimal.NewFromInt(600)) {
		t.Errorf("BaseCharge = %s, want 600", bill.BaseCharge)
	}
	if !bill.FinalCharge.Equal(decimal.NewFromInt(420)) {
		t.Errorf("FinalCharge = %s, want 420", bill.FinalCharge)
	}

	output := buf.String()
	for _, want := range []string{"HOSPITAL BILL", "5001", "John Smith", "Inpatient", "Corporate Insurance", "$600.00", "$420.00"} {
		if !strings.Contains(output, want) {
			t.Errorf("bill block missing %q:\n%s", want, output)
		}
	}

	if len(accounts.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(accounts.messages))
	}
	wantMsg := "Bill of $420.00 generated for John Smith"
	if accounts.messages[0] != wantMsg {
		t.Errorf("notification = %q, want %q", accounts.messages[0], wantMsg)
	}
}

func TestRegisterBillOutpatientNormal(t *testing.T) {
	var buf bytes.Buffer
	out := ui.NewWriter(&buf, true)

	registry := patient.NewRegistry(patient.DefaultStartingID)
	p := registry.AdmitOutpatient("Jane Doe", decimal.NewFromInt(50))

	biller := NewBiller(out, notify.NewPublisher(), money.CurrencyUSD)
	bill := biller.RegisterBill(p, Normal())

	if !bill.BaseCharge.Equal(bill.FinalCharge) {
		t.Errorf("Normal scheme changed the charge: base %s, final %s", bill.BaseCharge, bill.FinalCharge)
	}
	if !bill.FinalCharge.Equal(decimal.NewFromInt(50)) {
		t.Errorf("FinalCharge = %s, want 50", bill.FinalCharge)
	}
}

func TestRegisterBillWithoutSubscribersIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	out := ui.NewWriter(&buf, true)

	registry := patient.NewRegistry(patient.DefaultStartingID)
	p := registry.AdmitOutpatient("Jane Doe", decimal.NewFromInt(50))

	// Zero subscribers must not fail the billing event.
	biller := NewBiller(out, notify.NewPublisher(), money.CurrencyUSD)
	bill := biller.RegisterBill(p, Normal())

	if bill.PatientID != patient.DefaultStartingID {
		t.Errorf("PatientID = %d, want %d", bill.PatientID, patient.DefaultStartingID)
	}
}

func TestBillMessageFormat(t *testing.T) {
	bill := Bill{
		PatientName: "Ana",
		FinalCharge: decimal.NewFromFloat(1234.5),
		Currency:    money.CurrencyUSD,
	}
	want := "Bill of $1,234.50 generated for Ana"
	if bill.Message() != want {
		t.Errorf("Message() = %q, want %q", bill.Message(), want)
	}
}
