// Package hcl loads billing scheme definitions from HCL files.
//
// A scheme file holds one block per scheme:
//
//	scheme "corporate" {
//	  code       = "2"
//	  name       = "Corporate Insurance"
//	  multiplier = 0.70
//	}
//
// The Normal scheme is always present as the fallback; file schemes may
// override it by registering code "1".
package hcl

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"hospital-billing/core/billing"
	"hospital-billing/internal/errors"
)

// Load parses a scheme file from disk
func Load(path string) (*billing.Schemes, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read scheme file %s", path)
	}
	return Parse(src, path)
}

// Parse parses scheme definitions from HCL source
func Parse(src []byte, filename string) (*billing.Schemes, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeParsing, diags, "failed to parse %s", filename)
	}

	content, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "scheme", LabelNames: []string{"id"}},
		},
	})
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeParsing, diags, "invalid scheme file %s", filename)
	}

	schemes := billing.NewSchemes(billing.Normal())
	for _, block := range content.Blocks {
		scheme, err := parseScheme(block)
		if err != nil {
			return nil, err
		}
		schemes.Register(scheme)
	}

	return schemes, nil
}

func parseScheme(block *hcl.Block) (billing.Scheme, error) {
	label := block.Labels[0]

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return billing.Scheme{}, errors.Wrapf(errors.TypeParsing, diags, "invalid scheme block %q", label)
	}

	scheme := billing.Scheme{Name: label}

	code, err := stringAttr(attrs, "code", label)
	if err != nil {
		return billing.Scheme{}, err
	}
	scheme.Code = code

	if _, ok := attrs["name"]; ok {
		name, err := stringAttr(attrs, "name", label)
		if err != nil {
			return billing.Scheme{}, err
		}
		scheme.Name = name
	}

	multiplier, err := numberAttr(attrs, "multiplier", label)
	if err != nil {
		return billing.Scheme{}, err
	}
	scheme.Multiplier = multiplier

	return scheme, nil
}

func stringAttr(attrs hcl.Attributes, name, block string) (string, error) {
	val, err := attrValue(attrs, name, block, cty.String)
	if err != nil {
		return "", err
	}
	return val.AsString(), nil
}

func numberAttr(attrs hcl.Attributes, name, block string) (decimal.Decimal, error) {
	val, err := attrValue(attrs, name, block, cty.Number)
	if err != nil {
		return decimal.Zero, err
	}

	// Round-trip through the big.Float text form to keep decimal exactness.
	text := val.AsBigFloat().Text('f', -1)
	d, convErr := decimal.NewFromString(text)
	if convErr != nil {
		return decimal.Zero, errors.Wrapf(errors.TypeParsing, convErr,
			"scheme %q: attribute %q is not a valid number", block, name)
	}
	return d, nil
}

func attrValue(attrs hcl.Attributes, name, block string, want cty.Type) (cty.Value, error) {
	attr, ok := attrs[name]
	if !ok {
		return cty.NilVal, errors.Newf(errors.TypeScheme,
			"scheme %q: missing required attribute %q", block, name)
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, errors.Wrapf(errors.TypeParsing, diags,
			"scheme %q: cannot evaluate attribute %q", block, name)
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, errors.Wrapf(errors.TypeScheme, err,
			"scheme %q: attribute %q has the wrong type (want %s)", block, name, want.FriendlyName())
	}
	if converted.IsNull() {
		return cty.NilVal, errors.Newf(errors.TypeScheme,
			"scheme %q: attribute %q is null", block, name)
	}
	return converted, nil
}
