// Package manifest loads YAML run lists: which case paths to run,
// which to exclude, and per-prefix tolerance overrides. Run lists are
// the conformance-suite equivalent of a mustpass file; a host points
// the harness at one to reproduce a certification run.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glcts/compare"
)

// ToleranceOverride widens the comparison tolerance for every case
// whose path starts with Prefix.
type ToleranceOverride struct {
	Prefix string   `yaml:"prefix"`
	RGBA   [4]uint8 `yaml:"rgba"`
}

// Manifest is one parsed run list.
type Manifest struct {
	// Provider selects the context provider by registry name.
	// Empty means the registry default.
	Provider string `yaml:"provider"`

	// Include lists case-path prefixes to run. Empty means run
	// everything not excluded.
	Include []string `yaml:"include"`

	// Exclude lists case-path prefixes to skip. Exclusion wins over
	// inclusion.
	Exclude []string `yaml:"exclude"`

	// Tolerances lists per-prefix tolerance overrides.
	Tolerances []ToleranceOverride `yaml:"tolerances"`
}

// knownKeys are the recognized top-level manifest keys; others
// produce warnings, not errors, so older harnesses tolerate newer
// manifests.
var knownKeys = map[string]struct{}{
	"provider":   {},
	"include":    {},
	"exclude":    {},
	"tolerances": {},
}

// Load reads, validates, and parses a manifest file. The returned
// warnings list unknown top-level keys.
func Load(path string) (*Manifest, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and parses manifest data.
func Parse(data []byte) (*Manifest, []string, error) {
	if err := Validate(data); err != nil {
		return nil, nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("manifest: parse: %w", err)
	}

	warnings := unknownKeyWarnings(data)
	return &m, warnings, nil
}

// unknownKeyWarnings reports top-level keys the harness does not
// recognize.
func unknownKeyWarnings(data []byte) []string {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	var warnings []string
	for key := range doc {
		if _, ok := knownKeys[key]; !ok {
			warnings = append(warnings, fmt.Sprintf("unknown manifest key %q ignored", key))
		}
	}
	return warnings
}

// Filter returns a case-path predicate implementing the manifest's
// include/exclude rules, suitable for glcts.WithFilter.
func (m *Manifest) Filter() func(path string) bool {
	include := append([]string(nil), m.Include...)
	exclude := append([]string(nil), m.Exclude...)
	return func(path string) bool {
		for _, p := range exclude {
			if hasPathPrefix(path, p) {
				return false
			}
		}
		if len(include) == 0 {
			return true
		}
		for _, p := range include {
			if hasPathPrefix(path, p) {
				return true
			}
		}
		return false
	}
}

// Tolerance returns the override for the longest matching prefix, or
// def when none matches.
func (m *Manifest) Tolerance(path string, def compare.Tolerance) compare.Tolerance {
	best := -1
	out := def
	for _, o := range m.Tolerances {
		if hasPathPrefix(path, o.Prefix) && len(o.Prefix) > best {
			best = len(o.Prefix)
			out = compare.Tolerance(o.RGBA)
		}
	}
	return out
}

// hasPathPrefix matches whole dotted components: "a.b" matches
// "a.b.c" but not "a.bc".
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '.'
}
