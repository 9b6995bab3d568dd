package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-billing/core/billing"
	"hospital-billing/core/money"
	"hospital-billing/core/notify"
	"hospital-billing/core/patient"
	"hospital-billing/core/ui"
	"hospital-billing/internal/errors"
)

// run executes a session against scripted input and returns the output
func run(t *testing.T, input string, registry *patient.Registry) (string, *patient.Registry) {
	t.Helper()

	if registry == nil {
		registry = patient.NewRegistry(patient.DefaultStartingID)
	}

	var buf bytes.Buffer
	out := ui.NewWriter(&buf, true)

	publisher := notify.NewPublisher()
	publisher.Subscribe(notify.NewDepartment("Accounts Dept", out))
	publisher.Subscribe(notify.NewDepartment("Reception Desk", out))

	sess := New(Options{
		HospitalName: "City General Hospital",
		In:           strings.NewReader(input),
		Out:          out,
		Registry:     registry,
		Schemes:      billing.DefaultSchemes(),
		Publisher:    publisher,
		Currency:     money.CurrencyUSD,
	})

	require.NoError(t, sess.Run())
	return buf.String(), registry
}

func TestInpatientAdmissionWithCorporateInsurance(t *testing.T) {
	// Menu 1 → name, inpatient, 3 days at 200/day, corporate → pause → exit.
	input := "1\nJohn Smith\n1\n3\n200\n2\n\n2\n"

	output, registry := run(t, input, nil)

	assert.Contains(t, output, "HOSPITAL BILL")
	assert.Contains(t, output, "5001")
	assert.Contains(t, output, "John Smith")
	assert.Contains(t, output, "Inpatient")
	assert.Contains(t, output, "$600.00")
	assert.Contains(t, output, "$420.00")
	assert.Contains(t, output, "[Accounts Dept] Bill of $420.00 generated for John Smith")
	assert.Contains(t, output, "[Reception Desk] Bill of $420.00 generated for John Smith")
	assert.Equal(t, patient.DefaultStartingID+1, registry.NextID())
}

func TestOutpatientAdmissionWithNormalScheme(t *testing.T) {
	input := "1\nJane Doe\n2\n50\n1\n\n2\n"

	output, _ := run(t, input, nil)

	assert.Contains(t, output, "Outpatient")
	assert.Contains(t, output, "Jane Doe")
	// Base and final both 50: Normal is the identity scheme.
	assert.Contains(t, output, "$50.00")
	assert.NotContains(t, output, "$35.00")
	assert.Contains(t, output, "Bill of $50.00 generated for Jane Doe")
}

func TestUnrecognizedTypeCodeFallsBackToOutpatient(t *testing.T) {
	input := "1\nPat\n7\n80\n1\n\n2\n"

	output, _ := run(t, input, nil)

	assert.Contains(t, output, "Outpatient")
	assert.Contains(t, output, "$80.00")
}

func TestUnrecognizedSchemeCodeFallsBackToNormal(t *testing.T) {
	input := "1\nPat\n2\n100\n9\n\n2\n"

	output, _ := run(t, input, nil)

	assert.Contains(t, output, "Normal")
	assert.Contains(t, output, "Bill of $100.00 generated for Pat")
}

func TestBlankNameIsAccepted(t *testing.T) {
	input := "1\n\n2\n50\n1\n\n2\n"

	output, _ := run(t, input, nil)

	assert.Contains(t, output, "HOSPITAL BILL")
	assert.Contains(t, output, "Bill of $50.00 generated for ")
}

func TestMalformedDaysCancelsAdmission(t *testing.T) {
	input := "1\nBob\n1\nabc\n2\n"

	output, registry := run(t, input, nil)

	assert.NotContains(t, output, "HOSPITAL BILL")
	assert.Contains(t, output, "Admission cancelled")
	// The failed admission must not consume a patient ID.
	assert.Equal(t, patient.DefaultStartingID, registry.NextID())
}

func TestNextAdmissionAfterFailureGetsFirstID(t *testing.T) {
	input := "1\nBob\n1\nabc\n1\nAna\n2\n50\n1\n\n2\n"

	output, registry := run(t, input, nil)

	assert.Contains(t, output, "Admission cancelled")
	assert.Contains(t, output, "5001")
	assert.Contains(t, output, "Bill of $50.00 generated for Ana")
	assert.Equal(t, patient.DefaultStartingID+1, registry.NextID())
}

func TestSequentialAdmissionsGetSequentialIDs(t *testing.T) {
	input := "1\nA\n2\n10\n1\n\n1\nB\n2\n20\n1\n\n1\nC\n2\n30\n1\n\n2\n"

	output, registry := run(t, input, nil)

	assert.Contains(t, output, "5001")
	assert.Contains(t, output, "5002")
	assert.Contains(t, output, "5003")
	assert.Equal(t, patient.DefaultStartingID+3, registry.NextID())
}

func TestExitFromMainMenu(t *testing.T) {
	output, _ := run(t, "2\n", nil)
	assert.NotContains(t, output, "Patient Name")
}

func TestEOFEndsSession(t *testing.T) {
	// Input exhaustion at any prompt ends the session cleanly.
	for _, input := range []string{"", "1\n", "1\nBob\n", "1\nBob\n1\n3\n"} {
		output, _ := run(t, input, nil)
		assert.NotContains(t, output, "HOSPITAL BILL", "input %q", input)
	}
}

func TestParseDays(t *testing.T) {
	days, err := ParseDays(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, days)

	_, err = ParseDays("three")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestParseMoney(t *testing.T) {
	amount, err := ParseMoney("daily room rate", "199.99")
	require.NoError(t, err)
	assert.Equal(t, "199.99", amount.StringFixed(2))

	_, err = ParseMoney("consultation fee", "lots")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
