// Package debug renders values for humans reading debug logs.
package debug

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// PrettyJSONString returns the given value as a pretty-printed JSON string.
// If the value cannot be marshaled to JSON, an empty string is returned.
func PrettyJSONString(v any) string {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return ""
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// PrettyYAMLString returns the given value as a YAML document with two-space
// indentation and no trailing newline. If the value cannot be marshaled, an
// empty string is returned.
func PrettyYAMLString(v any) (out string) {
	// The encoder panics on unsupported kinds such as channels.
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2) //nolint:mnd

	if err := encoder.Encode(v); err != nil {
		return ""
	}

	if err := encoder.Close(); err != nil {
		return ""
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
