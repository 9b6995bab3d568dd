// Package session - Strict numeric input parsing
package session

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"hospital-billing/internal/errors"
)

// ParseDays converts admitted-days prompt text to an integer.
// Malformed text is a typed input error; the caller fails the current
// admission rather than the process.
func ParseDays(text string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errors.Wrapf(errors.TypeInput, err, "invalid day count %q", text)
	}
	return days, nil
}

// ParseMoney converts prompt text to a decimal amount. The field name is
// used in the error message.
func ParseMoney(field, text string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeInput, err, "invalid %s %q", field, text)
	}
	return amount, nil
}
