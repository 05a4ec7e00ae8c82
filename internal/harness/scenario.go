package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/genesearch/internal/dispatch"
	"github.com/roach88/genesearch/internal/store"
)

// Scenario defines a conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Records is an inline dataset. Exactly one of Records and Dataset is set.
	Records []store.Record `yaml:"records,omitempty"`

	// Dataset is a TSV file path, relative to the scenario file.
	Dataset string `yaml:"dataset,omitempty"`

	// Flow is the command sequence to execute.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the whole trace.
	// Supported types: status_count, status_order, digest
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// FlowStep is one command with an optional expectation.
type FlowStep struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`

	// Expect is checked against the outcome; nil skips the check.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	Status string `yaml:"status"`

	// Result is a subset match against the outcome payload.
	Result map[string]any `yaml:"result,omitempty"`
}

// Assertion validates the trace after the flow completes.
type Assertion struct {
	Type string `yaml:"type"`

	// Status and Count are used by status_count.
	Status string `yaml:"status,omitempty"`
	Count  int    `yaml:"count,omitempty"`

	// Statuses is the expected status sequence (status_order).
	Statuses []string `yaml:"statuses,omitempty"`

	// Digest is the expected dataset digest (digest).
	Digest string `yaml:"digest,omitempty"`
}

// Assertion type constants.
const (
	AssertStatusCount = "status_count"
	AssertStatusOrder = "status_order"
	AssertDigest      = "digest"
)

var validStatuses = map[string]bool{
	string(dispatch.StatusOK):               true,
	string(dispatch.StatusNotFound):         true,
	string(dispatch.StatusMissing):          true,
	string(dispatch.StatusMalformed):        true,
	string(dispatch.StatusUnknownCommand):   true,
	string(dispatch.StatusInvalidArguments): true,
	string(dispatch.StatusError):            true,
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected. A relative Dataset path is resolved
// against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if scenario.Dataset != "" && !filepath.IsAbs(scenario.Dataset) {
		scenario.Dataset = filepath.Join(filepath.Dir(path), scenario.Dataset)
	}
	return scenario, nil
}

// ParseScenario decodes and validates a scenario from r.
func ParseScenario(r io.Reader) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scenario")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario missing required field: name")
	}
	if s.Description == "" {
		return fmt.Errorf("scenario %q missing required field: description", s.Name)
	}
	if s.Dataset != "" && len(s.Records) > 0 {
		return fmt.Errorf("scenario %q: records and dataset are mutually exclusive", s.Name)
	}
	if len(s.Flow) == 0 {
		return fmt.Errorf("scenario %q has empty flow", s.Name)
	}

	for i, step := range s.Flow {
		if step.Command == "" {
			return fmt.Errorf("scenario %q flow[%d]: missing command", s.Name, i)
		}
		if step.Expect != nil && !validStatuses[step.Expect.Status] {
			return fmt.Errorf("scenario %q flow[%d]: unknown expected status %q", s.Name, i, step.Expect.Status)
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertStatusCount:
			if !validStatuses[a.Status] {
				return fmt.Errorf("scenario %q assertion[%d]: unknown status %q", s.Name, i, a.Status)
			}
		case AssertStatusOrder:
			if len(a.Statuses) == 0 {
				return fmt.Errorf("scenario %q assertion[%d]: status_order requires statuses", s.Name, i)
			}
			for _, st := range a.Statuses {
				if !validStatuses[st] {
					return fmt.Errorf("scenario %q assertion[%d]: unknown status %q", s.Name, i, st)
				}
			}
		case AssertDigest:
			if a.Digest == "" {
				return fmt.Errorf("scenario %q assertion[%d]: digest requires a value", s.Name, i)
			}
		default:
			return fmt.Errorf("scenario %q assertion[%d]: unknown assertion type %q", s.Name, i, a.Type)
		}
	}
	return nil
}
