// Package yamlsrc decodes YAML manifests into the generic document tree.
// Importing the package registers the decoder for .yaml and .yml.
package yamlsrc

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pfragkiad/filedeps"
)

type decoder struct{}

// Decoder returns the YAML decoder.
func Decoder() filedeps.Decoder { return decoder{} }

func (decoder) Name() string         { return "yaml" }
func (decoder) Extensions() []string { return []string{".yaml", ".yml"} }

func (decoder) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}

// normalize rewrites the yaml.v3 tree so every object is a map[string]any.
// yaml.v3 already produces string-keyed maps for string keys, but non-string
// keys (and aliases that expand to them) come back as map[any]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}

func init() { filedeps.RegisterDecoder(decoder{}) }
