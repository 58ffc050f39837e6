package lexer

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a serialized Definition
type Format int

const (
	// FormatJSON is a JSON encoded definition
	FormatJSON Format = iota
	// FormatYAML is a YAML encoded definition
	FormatYAML
)

// String implements the stringer interface for Format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "<unknown>"
	}
}

// ReadDefinition decodes a Definition written by a lexer generator.
// Handlers aren't part of a definition, bind them with Compile
func ReadDefinition(r io.Reader, f Format) (def Definition, err error) {
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&def)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&def)
	default:
		return def, fmt.Errorf("lexer: unsupported definition format %s", f)
	}
	if err != nil {
		return def, fmt.Errorf("lexer: reading %s definition: %w", f, err)
	}
	return def, nil
}
