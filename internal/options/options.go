// Package options handles free-form presentation options supplied as raw
// YAML "key: value" fragments on the command line and merged into the
// generated task entries.
package options

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Map holds decoded presentation options. Values carry whatever scalar or
// structured type the YAML decoder produced (bool, string, int, nested map).
type Map map[string]any

// InvalidOptionError reports an option string that could not be decoded
// into a key/value mapping.
type InvalidOptionError struct {
	Option string
	Err    error
}

func (e *InvalidOptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid option %q: %v", e.Option, e.Err)
	}
	return fmt.Sprintf("invalid option %q: must be a YAML key-value pair", e.Option)
}

func (e *InvalidOptionError) Unwrap() error {
	return e.Err
}

// Parse decodes a single "key: value" fragment into a Map.
// The string is wrapped in braces so it decodes as a flow mapping, which
// keeps multi-key fragments like "a: 1, b: 2" working too.
func Parse(option string) (Map, error) {
	var decoded map[string]any
	if err := yaml.Unmarshal([]byte("{"+option+"}"), &decoded); err != nil {
		return nil, &InvalidOptionError{Option: option, Err: err}
	}
	if decoded == nil {
		return nil, &InvalidOptionError{Option: option}
	}
	return Map(decoded), nil
}

// ParseAll decodes a list of option fragments, preserving order.
// The first malformed fragment aborts the whole parse.
func ParseAll(opts []string) ([]Map, error) {
	parsed := make([]Map, 0, len(opts))
	for _, opt := range opts {
		m, err := Parse(opt)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, m)
	}
	return parsed, nil
}

// Merge combines base with the given overrides, later maps winning on key
// collision. Neither base nor any override is mutated.
func Merge(base Map, overrides ...Map) Map {
	merged := make(Map, len(base))
	for k, v := range base {
		merged[k] = v
	}
	for _, override := range overrides {
		for k, v := range override {
			merged[k] = v
		}
	}
	return merged
}
