package harness

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harwick/modlift/pkg/container"
)

// Step is one ordered scenario step: an operation, the expected
// post-state, and the target modules in application order.
type Step struct {
	// Op is one of "install", "start", "stop", "uninstall".
	Op string `yaml:"op"`

	// Expect is the state every target must report after the operation.
	Expect string `yaml:"expect"`

	// Modules are logical module names, applied in the order given.
	// Install steps register the resulting handles under these names.
	Modules []string `yaml:"modules"`

	// Tolerate names a type whose loading failure is acceptable for this
	// step. Only valid for single-module start/stop/uninstall steps; any
	// other failure still aborts the scenario.
	Tolerate string `yaml:"tolerate,omitempty"`
}

// Scenario is an ordered sequence of steps executed against one fresh
// container session. Scenarios are constructed per run and discarded after
// assertion; nothing persists.
type Scenario struct {
	Name string `yaml:"name"`

	// Fixture selects the blueprint bank for reference runs. Empty means
	// the default fixture of the container factory.
	Fixture string `yaml:"fixture,omitempty"`

	Steps []Step `yaml:"steps"`

	// Verify, when set, runs after all steps succeed. Built-in scenarios
	// use it for checks that steps cannot express (loader identity,
	// provider discovery). Not loadable from YAML.
	Verify func(ctx context.Context, s *Session) error `yaml:"-"`
}

var validOps = map[string]bool{
	"install":   true,
	"start":     true,
	"stop":      true,
	"uninstall": true,
}

// Validate checks the scenario's shape without executing it.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if !validOps[step.Op] {
			return fmt.Errorf("scenario %q step %d: unknown op %q", s.Name, i+1, step.Op)
		}
		if _, err := container.ParseState(step.Expect); err != nil {
			return fmt.Errorf("scenario %q step %d: %w", s.Name, i+1, err)
		}
		if len(step.Modules) == 0 {
			return fmt.Errorf("scenario %q step %d: no target modules", s.Name, i+1)
		}
		if step.Tolerate != "" {
			if step.Op == "install" {
				return fmt.Errorf("scenario %q step %d: tolerate is not valid for install", s.Name, i+1)
			}
			if len(step.Modules) != 1 {
				return fmt.Errorf("scenario %q step %d: tolerate requires exactly one module", s.Name, i+1)
			}
		}
	}
	return nil
}

// LoadScenarios parses a YAML scenario file. A file may hold a single
// scenario document or a list of them.
func LoadScenarios(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	scenarios, err := ParseScenarios(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// ParseScenarios parses scenario YAML and validates every scenario.
func ParseScenarios(data []byte) ([]*Scenario, error) {
	var list []*Scenario
	if err := yaml.Unmarshal(data, &list); err != nil {
		// Fall back to a single-document scenario.
		var one Scenario
		if err2 := yaml.Unmarshal(data, &one); err2 != nil {
			return nil, fmt.Errorf("parsing scenarios: %w", err)
		}
		list = []*Scenario{&one}
	}
	for i, s := range list {
		if s == nil {
			return nil, fmt.Errorf("parsing scenarios: entry %d is empty", i+1)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return list, nil
}
