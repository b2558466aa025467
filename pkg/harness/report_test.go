package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/harwick/modlift/pkg/container"
)

func TestDescribeStep(t *testing.T) {
	plain := Step{Op: "start", Expect: "active", Modules: []string{"a", "b"}}
	assert.Equal(t, "start [a b] → active", describeStep(plain))

	tolerant := Step{Op: "start", Expect: "active", Modules: []string{"a"}, Tolerate: "com.acme.logging.Logger"}
	assert.Equal(t, "start [a] → active (tolerating missing com.acme.logging.Logger)", describeStep(tolerant))
}

func TestRenderPassingReport(t *testing.T) {
	rep := &Report{
		Scenario: "start-stop-cycle",
		Total:    3,
		Results: []StepResult{
			{Desc: describeStep(Step{Op: "install", Expect: "installed", Modules: []string{"com.acme.logging.api", "com.acme.logging.core"}})},
			{Desc: describeStep(Step{Op: "start", Expect: "active", Modules: []string{"com.acme.logging.api", "com.acme.logging.core"}})},
			{Desc: describeStep(Step{Op: "uninstall", Expect: "uninstalled", Modules: []string{"com.acme.logging.core", "com.acme.logging.api"}})},
		},
	}

	assert.True(t, rep.Passed())
	g := goldie.New(t)
	g.Assert(t, "report_pass", []byte(rep.Render()))
}

func TestRenderFailingReport(t *testing.T) {
	mismatch := &StateMismatchError{
		Module: "com.acme.logging.core",
		Op:     "start",
		Want:   container.Active,
		Got:    container.Installed,
	}
	rep := &Report{
		Scenario: "fragment-attachment",
		Total:    6,
		Results: []StepResult{
			{Desc: describeStep(Step{Op: "install", Expect: "installed", Modules: []string{"com.acme.logging.api", "com.acme.logging.core", "com.acme.logging.compat"}})},
			{Desc: describeStep(Step{Op: "start", Expect: "active", Modules: []string{"com.acme.logging.api"}})},
			{Desc: describeStep(Step{Op: "start", Expect: "active", Modules: []string{"com.acme.logging.core"}}), Err: mismatch},
		},
		Err: mismatch,
	}

	assert.False(t, rep.Passed())
	g := goldie.New(t)
	g.Assert(t, "report_fail", []byte(rep.Render()))
}
