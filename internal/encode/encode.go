// Package encode converts parsed INI files into other configuration formats.
package encode

import (
	"encoding/json"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/ZebulonRouseFrantzich/iniq"
)

// Format identifies a target encoding.
type Format int

const (
	JSON Format = iota
	TOML
	YAML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps a user-supplied name to a Format. Matching ignores case,
// and "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want json, toml or yaml)", name)
	}
}

// Encode renders every section of f in the requested format. Values stay
// strings exactly as parsed; nothing is re-typed. Sections that never
// received a field appear as empty tables.
func Encode(f *iniq.File, format Format) ([]byte, error) {
	tree := make(map[string]map[string]string)
	for _, name := range f.SectionNames() {
		section := make(map[string]string)
		if fields, ok := f.SectionFields(name); ok {
			for _, field := range fields {
				section[field.Key] = field.Value
			}
		}
		tree[name] = section
	}

	switch format {
	case JSON:
		return json.MarshalIndent(tree, "", "  ")
	case TOML:
		return toml.Marshal(tree)
	case YAML:
		return yaml.Marshal(tree)
	default:
		return nil, fmt.Errorf("unknown format %d", int(format))
	}
}
