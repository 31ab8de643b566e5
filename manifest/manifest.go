/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/suparena/polyregistry/errors"
)

// Manifest declares the type names every family registry must provide. It
// is the auditable side of an explicit startup registration pass: after
// RegisterAll runs, Verify checks the registry against the manifest and
// surfaces anything missing before the first construction by name.
type Manifest struct {
	// Imports lists extra import paths generated registration code needs
	// to reference the declared Go types.
	Imports []string `yaml:"imports,omitempty"`

	Families []Family `yaml:"families"`
}

// Family declares the expected registrations for one base family.
type Family struct {
	// Name identifies the family (for example "entity").
	Name string `yaml:"name"`
	// Types lists the registrations the family must contain.
	Types []Type `yaml:"types"`
}

// Type declares a single registered name and, for code generation, the Go
// type backing it.
type Type struct {
	// Name is the registered name.
	Name string `yaml:"name"`
	// GoType is the Go type expression used by generated registration
	// code. Defaults to Name when empty.
	GoType string `yaml:"goType,omitempty"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses manifest YAML and validates name uniqueness. Duplicate
// family names or duplicate type names within a family are configuration
// errors and fail the parse.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	seenFamilies := make(map[string]bool)
	for _, f := range m.Families {
		if f.Name == "" {
			return nil, fmt.Errorf("manifest contains a family with no name")
		}
		if seenFamilies[f.Name] {
			return nil, errors.NewDuplicateNameError("manifest", f.Name)
		}
		seenFamilies[f.Name] = true

		seenTypes := make(map[string]bool)
		for _, t := range f.Types {
			if t.Name == "" {
				return nil, fmt.Errorf("family %q contains a type with no name", f.Name)
			}
			if seenTypes[t.Name] {
				return nil, errors.NewDuplicateNameError(f.Name, t.Name)
			}
			seenTypes[t.Name] = true
		}
	}
	return &m, nil
}

// Family returns the named family declaration, if present.
func (m *Manifest) Family(name string) (*Family, bool) {
	for i := range m.Families {
		if m.Families[i].Name == name {
			return &m.Families[i], true
		}
	}
	return nil, false
}

// TypeNames returns the declared type names in manifest order.
func (f *Family) TypeNames() []string {
	names := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		names = append(names, t.Name)
	}
	return names
}

// Missing returns the declared names absent from the registered set, in
// sorted order.
func (f *Family) Missing(registered []string) []string {
	have := make(map[string]bool, len(registered))
	for _, name := range registered {
		have[name] = true
	}

	var missing []string
	for _, t := range f.Types {
		if !have[t.Name] {
			missing = append(missing, t.Name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Verify checks that every declared type name appears in the registered
// set. It returns an error naming the missing registrations; callers
// should treat that as fatal startup configuration.
func (f *Family) Verify(registered []string) error {
	missing := f.Missing(registered)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("family %q is missing registrations: %v", f.Name, missing)
}
