package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-billing/internal/errors"
)

const validSchemes = `
scheme "corporate" {
  code       = "2"
  name       = "Corporate Insurance"
  multiplier = 0.70
}

scheme "senior" {
  code       = "3"
  name       = "Senior Citizen Discount"
  multiplier = 0.85
}
`

func TestParseValidSchemeFile(t *testing.T) {
	schemes, err := Parse([]byte(validSchemes), "schemes.hcl")
	require.NoError(t, err)

	corporate := schemes.Lookup("2")
	assert.Equal(t, "Corporate Insurance", corporate.Name)
	assert.Equal(t, "0.70", corporate.Multiplier.StringFixed(2))

	senior := schemes.Lookup("3")
	assert.Equal(t, "Senior Citizen Discount", senior.Name)
	assert.Equal(t, "0.85", senior.Multiplier.StringFixed(2))

	// Normal is always registered as the fallback.
	assert.Equal(t, "Normal", schemes.Lookup("unknown").Name)
	assert.Len(t, schemes.All(), 3)
}

func TestParseDefaultsNameToBlockLabel(t *testing.T) {
	src := `
scheme "staff" {
  code       = "4"
  multiplier = 0.5
}
`
	schemes, err := Parse([]byte(src), "schemes.hcl")
	require.NoError(t, err)

	staff := schemes.Lookup("4")
	assert.Equal(t, "staff", staff.Name)
	assert.Equal(t, "0.50", staff.Multiplier.StringFixed(2))
}

func TestParseRejectsMalformedHCL(t *testing.T) {
	_, err := Parse([]byte(`scheme "x" {`), "broken.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestParseRejectsMissingMultiplier(t *testing.T) {
	src := `
scheme "bad" {
  code = "5"
}
`
	_, err := Parse([]byte(src), "schemes.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeScheme))
}

func TestParseRejectsWrongAttributeType(t *testing.T) {
	src := `
scheme "bad" {
  code       = "5"
  multiplier = "not a number"
}
`
	// HCL converts numeric strings, so use a genuinely non-numeric value.
	_, err := Parse([]byte(src), "schemes.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeScheme))
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(validSchemes), 0644))

	schemes, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Corporate Insurance", schemes.Lookup("2").Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}
