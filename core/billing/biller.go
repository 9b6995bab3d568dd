// Package billing - Billing orchestrator
package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"hospital-billing/core/money"
	"hospital-billing/core/notify"
	"hospital-billing/core/patient"
	"hospital-billing/core/ui"
	"hospital-billing/internal/logging"
)

// billWidth is the inner width of the printed bill block
const billWidth = 46

// Bill is the ephemeral result of a billing event. It exists for the
// duration of printing and is never stored.
type Bill struct {
	// PatientID is the admission identifier
	PatientID int `json:"patient_id"`

	// PatientName is the patient's full name
	PatientName string `json:"patient_name"`

	// PatientKind is the variant label
	PatientKind patient.Kind `json:"patient_kind"`

	// Scheme is the applied billing scheme
	Scheme Scheme `json:"scheme"`

	// BaseCharge is the unmodified treatment cost
	BaseCharge decimal.Decimal `json:"base_charge"`

	// FinalCharge is the base charge after the scheme multiplier
	FinalCharge decimal.Decimal `json:"final_charge"`

	// Currency is the billing currency
	Currency money.Currency `json:"currency"`
}

// Message is the notification text for this bill
func (b Bill) Message() string {
	return fmt.Sprintf("Bill of %s generated for %s",
		money.Format(b.Currency, b.FinalCharge), b.PatientName)
}

// Biller orchestrates a billing event: compute, render, notify
type Biller struct {
	out       *ui.Writer
	publisher *notify.Publisher
	currency  money.Currency
}

// NewBiller creates a biller
func NewBiller(out *ui.Writer, publisher *notify.Publisher, currency money.Currency) *Biller {
	return &Biller{
		out:       out,
		publisher: publisher,
		currency:  currency,
	}
}

// RegisterBill computes the patient's charges under the scheme, prints the
// bill block, and notifies the registered departments. It cannot fail:
// schemes are closed values and charges are unvalidated arithmetic.
func (b *Biller) RegisterBill(p patient.Patient, scheme Scheme) Bill {
	base := p.BaseCharge()

	bill := Bill{
		PatientID:   p.ID(),
		PatientName: p.Name(),
		PatientKind: p.Kind(),
		Scheme:      scheme,
		BaseCharge:  base,
		FinalCharge: scheme.Apply(base),
		Currency:    b.currency,
	}

	b.render(bill)
	b.publisher.Publish(bill.Message())

	logging.Debug("bill registered",
		zap.Int("patient_id", bill.PatientID),
		zap.String("patient_kind", bill.PatientKind.String()),
		zap.String("scheme", scheme.Name),
		zap.String("base_charge", bill.BaseCharge.StringFixed(2)),
		zap.String("final_charge", bill.FinalCharge.StringFixed(2)))

	return bill
}

func (b *Biller) render(bill Bill) {
	top := "┌" + strings.Repeat("─", billWidth) + "┐"
	mid := "├" + strings.Repeat("─", billWidth) + "┤"
	bottom := "└" + strings.Repeat("─", billWidth) + "┘"

	b.out.Println("")
	b.out.Println("%s", top)
	b.out.Println("│%s│", center("HOSPITAL BILL", billWidth))
	b.out.Println("%s", mid)
	b.row("Patient ID", fmt.Sprintf("%d", bill.PatientID))
	b.row("Name", bill.PatientName)
	b.row("Patient Type", bill.PatientKind.String())
	b.row("Billing Scheme", bill.Scheme.Name)
	b.row("Base Charge", money.Format(bill.Currency, bill.BaseCharge))
	b.row("Final Charge", money.Format(bill.Currency, bill.FinalCharge))
	b.out.Println("%s", bottom)
	b.out.Println("")
}

func (b *Biller) row(label, value string) {
	content := fmt.Sprintf(" %-14s : %s", label, value)
	if len([]rune(content)) > billWidth {
		content = string([]rune(content)[:billWidth])
	}
	b.out.Println("│%-*s│", billWidth, content)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
