package conformance

import (
	"fmt"

	"github.com/harwick/modlift/pkg/container"
	"github.com/harwick/modlift/pkg/container/containertest"
)

// Fixture names understood by the reference factory.
const (
	FixtureLogging        = "logging"
	FixtureLazyActivation = "lazy-activation"
)

// ReferenceFactory is a harness.ContainerFactory serving the reference
// in-memory container pre-loaded with the requested fixture bank. An empty
// fixture selects the default logging stack.
func ReferenceFactory(fixture string) (container.Container, error) {
	switch fixture {
	case "", FixtureLogging:
		return containertest.New(containertest.LoggingStack()...), nil
	case FixtureLazyActivation:
		return containertest.New(containertest.LazyActivationStack()...), nil
	default:
		return nil, fmt.Errorf("unknown fixture %q", fixture)
	}
}
