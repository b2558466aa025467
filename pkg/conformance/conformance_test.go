package conformance

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwick/modlift/pkg/harness"
)

func TestBuiltinScenariosPass(t *testing.T) {
	runner := harness.NewRunner(ReferenceFactory, zerolog.Nop())

	for _, sc := range All() {
		t.Run(sc.Name, func(t *testing.T) {
			require.NoError(t, sc.Validate())
			rep := runner.Run(context.Background(), sc)
			assert.True(t, rep.Passed(), "report:\n%s", rep.Render())
		})
	}
}

func TestBuiltinScenarioNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, sc := range All() {
		assert.False(t, seen[sc.Name], "duplicate scenario name %q", sc.Name)
		seen[sc.Name] = true
	}
}

func TestReferenceFactoryFixtures(t *testing.T) {
	for _, fixture := range []string{"", FixtureLogging, FixtureLazyActivation} {
		c, err := ReferenceFactory(fixture)
		require.NoError(t, err, "fixture %q", fixture)
		require.NoError(t, c.Close())
	}

	_, err := ReferenceFactory("bogus")
	require.Error(t, err)
}

func TestStartStopCycleCatchesBrokenContainers(t *testing.T) {
	// Point the cycle at the lazy-activation bank, whose core reports an
	// activation failure the cycle does not tolerate.
	sc := StartStopCycle()
	sc.Fixture = FixtureLazyActivation

	runner := harness.NewRunner(ReferenceFactory, zerolog.Nop())
	rep := runner.Run(context.Background(), sc)

	require.False(t, rep.Passed())
	assert.ErrorContains(t, rep.Err, "operation failure for module")
	assert.Less(t, len(rep.Results), rep.Total, "the run must abort before completing")
}
