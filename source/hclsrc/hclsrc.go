// Package hclsrc decodes HCL manifests into the generic document tree. A
// manifest is a flat set of top-level attributes whose values may be strings,
// lists and objects; blocks are not part of the dialect. Importing the package
// registers the decoder for .hcl.
package hclsrc

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/pfragkiad/filedeps"
)

type decoder struct{}

// Decoder returns the HCL decoder.
func Decoder() filedeps.Decoder { return decoder{} }

func (decoder) Name() string         { return "hcl" }
func (decoder) Extensions() []string { return []string{".hcl"} }

func (decoder) Decode(data []byte) (any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, "manifest.hcl")
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	root := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.New(diags.Error())
		}
		v, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		root[name] = v
	}
	return root, nil
}

// fromCty converts a statically evaluated cty.Value into the map/slice/scalar
// tree the validator walks.
func fromCty(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			e, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			e, err := fromCty(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = e
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

func init() { filedeps.RegisterDecoder(decoder{}) }
