package manifest

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// File represents the top-level structure of one manifest file.
type File struct {
	DataTypes []*DataTypeBlock `hcl:"data_type,block"`
}

// DataTypeBlock is a single `data_type "<kind>" "<name>" { ... }` block.
// The signature is kept as an expression so manifests can spell it either as
// a hex string or, for small values, as an integer literal.
type DataTypeBlock struct {
	Kind      string         `hcl:"kind,label"`
	Name      string         `hcl:"name,label"`
	ID        int            `hcl:"id"`
	Signature hcl.Expression `hcl:"signature"`
}

// signatureValue evaluates the signature expression of a block.
func (b *DataTypeBlock) signatureValue() (uint64, error) {
	val, diags := b.Signature.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("evaluating signature for %q: %w", b.Name, diags)
	}

	switch val.Type() {
	case cty.String:
		value, err := strconv.ParseUint(val.AsString(), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("signature for %q is not a valid unsigned integer: %w", b.Name, err)
		}
		return value, nil
	case cty.Number:
		var value uint64
		if err := gocty.FromCtyValue(val, &value); err != nil {
			return 0, fmt.Errorf("signature for %q: %w", b.Name, err)
		}
		return value, nil
	default:
		return 0, fmt.Errorf("signature for %q must be a string or a number, got %s", b.Name, val.Type().FriendlyName())
	}
}
