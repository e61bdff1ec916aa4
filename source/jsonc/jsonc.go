// Package jsonc decodes relaxed JSON manifests: standard JSON plus // and
// /* */ comments and trailing commas (the JWCC dialect). Importing the package
// registers the decoder for .json and .jsonc and installs it as the fallback
// for unknown extensions.
package jsonc

import (
	gojson "github.com/goccy/go-json"
	"github.com/tailscale/hujson"

	"github.com/pfragkiad/filedeps"
)

type decoder struct{}

// Decoder returns the relaxed-JSON decoder.
func Decoder() filedeps.Decoder { return decoder{} }

func (decoder) Name() string         { return "jsonc" }
func (decoder) Extensions() []string { return []string{".json", ".jsonc"} }

func (decoder) Decode(data []byte) (any, error) {
	// Standardize strips comments and trailing commas, leaving strict JSON
	// for the fast decoder.
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}
	var v any
	if err := gojson.Unmarshal(std, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func init() {
	filedeps.RegisterDecoder(decoder{})
	filedeps.SetFallbackDecoder(decoder{})
}
