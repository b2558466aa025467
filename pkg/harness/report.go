package harness

import (
	"fmt"
	"strings"
)

// StepResult records one executed step's outcome.
type StepResult struct {
	Desc string
	Err  error
}

// Report is the outcome of one scenario run: every executed step in order
// and the first failure, if any. Steps after a failure are never executed.
type Report struct {
	Scenario string
	Total    int // declared steps, including the verify hook if present
	Results  []StepResult
	Err      error
}

// Passed reports whether every step succeeded.
func (r *Report) Passed() bool {
	return r.Err == nil
}

// Render returns the plain-text report.
func (r *Report) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "scenario: %s\n", r.Scenario)
	for _, res := range r.Results {
		if res.Err != nil {
			fmt.Fprintf(&sb, "  FAIL  %s\n        %v\n", res.Desc, res.Err)
			continue
		}
		fmt.Fprintf(&sb, "  ok    %s\n", res.Desc)
	}
	if r.Passed() {
		fmt.Fprintf(&sb, "result: pass (%d steps)\n", len(r.Results))
	} else {
		fmt.Fprintf(&sb, "result: fail (aborted at step %d of %d)\n", len(r.Results), r.Total)
	}
	return sb.String()
}

// describeStep renders a step as "op [targets] → state".
func describeStep(step Step) string {
	desc := fmt.Sprintf("%s [%s] → %s", step.Op, strings.Join(step.Modules, " "), step.Expect)
	if step.Tolerate != "" {
		desc += fmt.Sprintf(" (tolerating missing %s)", step.Tolerate)
	}
	return desc
}
