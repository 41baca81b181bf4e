package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SuiteFile is the on-disk representation of a custom suite.
// A suite file holds one or more phases, each with an ordered case list.
type SuiteFile struct {
	// Phases lists the phases in execution order.
	Phases []PhaseFile `yaml:"phases"`
}

// PhaseFile is the YAML form of a single phase.
type PhaseFile struct {
	// Name labels the phase in output and is what --phase matches against.
	Name string `yaml:"name"`

	// Cases lists the test cases in execution order.
	Cases []TestCase `yaml:"cases"`
}

// LoadSuite reads and parses a suite YAML file into executable phases.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadSuite(path string) ([]Phase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var sf SuiteFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&sf); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}

	phases := make([]Phase, 0, len(sf.Phases))
	for _, pf := range sf.Phases {
		phases = append(phases, Phase{Name: pf.Name, Cases: pf.Cases})
	}
	return phases, nil
}

// LoadSuiteDir loads every .yaml/.yml file directly under dir, in
// lexical filename order, and concatenates their phases. Useful for
// splitting a large custom suite across files while keeping a stable
// execution order.
func LoadSuiteDir(dir string) ([]Phase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no suite files found in %s", dir)
	}

	var phases []Phase
	for _, name := range names {
		loaded, err := LoadSuite(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		phases = append(phases, loaded...)
	}
	return phases, nil
}

// validateSuite checks that required fields are present and valid.
func validateSuite(sf *SuiteFile) error {
	if len(sf.Phases) == 0 {
		return fmt.Errorf("phases list is required and must be non-empty")
	}

	for i, pf := range sf.Phases {
		if pf.Name == "" {
			return fmt.Errorf("phases[%d]: name is required", i)
		}
		if len(pf.Cases) == 0 {
			return fmt.Errorf("phases[%d]: cases list is required and must be non-empty", i)
		}
		for j, tc := range pf.Cases {
			prefix := fmt.Sprintf("phases[%d].cases[%d]", i, j)
			if tc.Description == "" {
				return fmt.Errorf("%s: description is required", prefix)
			}
			if tc.Command == "" {
				return fmt.Errorf("%s: command is required", prefix)
			}
			if !IsValidExpectationKind(tc.Expect) {
				return fmt.Errorf("%s: unknown expect %q (valid: %s)",
					prefix, tc.Expect, strings.Join(expectationKindNames(), ", "))
			}
			switch tc.Expect {
			case ExpectOutputContains, ExpectOutputEquals:
				if tc.ExpectedValue == "" {
					return fmt.Errorf("%s: expected_value is required for expect %q", prefix, tc.Expect)
				}
			case ExpectFileExists, ExpectFileGone:
				if tc.CheckPath == "" {
					return fmt.Errorf("%s: check_path is required for expect %q", prefix, tc.Expect)
				}
			}
		}
	}
	return nil
}

func expectationKindNames() []string {
	names := make([]string, 0, len(ValidExpectationKinds))
	for _, k := range ValidExpectationKinds {
		names = append(names, string(k))
	}
	return names
}
