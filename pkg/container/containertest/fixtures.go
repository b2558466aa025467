package containertest

import (
	"fmt"

	"github.com/harwick/modlift/pkg/container"
)

// Fixture module and type names for the canonical logging stack: an API
// module, a Core module wired to it, a legacy-compatibility fragment
// attached to Core, and a test-utilities module hosting the provider
// enumeration entrypoint.
const (
	APIName     = "com.acme.logging.api"
	CoreName    = "com.acme.logging.core"
	CompatName  = "com.acme.logging.compat"
	APITestName = "com.acme.logging.api.test"

	LoggerType      = "com.acme.logging.Logger"
	LevelType       = "com.acme.logging.Level"
	CompatLevelType = "com.acme.compat.Level"
	CoreType        = "com.acme.logging.core.Core"
	LocatorType     = "com.acme.logging.spi.ServiceLocator"
	EnumeratorType  = "com.acme.logging.test.ProviderEnumeration"
	ProviderType    = "com.acme.logging.core.CoreProvider"
)

// APIBlueprint returns the logging API module: exports the public types and
// hosts the discovery locator.
func APIBlueprint() *Blueprint {
	return &Blueprint{
		SymbolicName: APIName,
		Exports:      []string{LoggerType, LevelType, LocatorType},
		Locator:      LocatorType,
	}
}

// CoreBlueprint returns the logging Core module: requires the API types,
// exports its own, and contributes exactly one service provider.
func CoreBlueprint() *Blueprint {
	return &Blueprint{
		SymbolicName: CoreName,
		Exports:      []string{CoreType},
		Requires:     []string{LoggerType, LevelType},
		Providers:    []string{ProviderType},
	}
}

// CompatBlueprint returns the legacy-compatibility module, a fragment
// attached to Core. Its exports load through Core's loader.
func CompatBlueprint() *Blueprint {
	return &Blueprint{
		SymbolicName: CompatName,
		Exports:      []string{CompatLevelType},
		FragmentHost: CoreName,
	}
}

// APITestBlueprint returns the test-utilities module hosting the provider
// enumeration entrypoint.
func APITestBlueprint() *Blueprint {
	return &Blueprint{
		SymbolicName: APITestName,
		Exports:      []string{EnumeratorType},
		Enumerator:   EnumeratorType,
	}
}

// LoggingStack returns the full fixture bank: api, core, compat, apitest.
func LoggingStack() []*Blueprint {
	return []*Blueprint{
		APIBlueprint(),
		CoreBlueprint(),
		CompatBlueprint(),
		APITestBlueprint(),
	}
}

// LazyActivationStack is LoggingStack with Core's start scripted to fail
// with a wiring error bottoming out in TypeNotFoundError for the Logger
// type (two causes beneath the returned error) while still activating
// the module. Models containers that report an activation error after the
// module has already transitioned.
func LazyActivationStack() []*Blueprint {
	bps := LoggingStack()
	for _, bp := range bps {
		if bp.SymbolicName != CoreName {
			continue
		}
		bp.StartFn = func(m *FakeModule) error {
			m.SetState(container.Active)
			return &container.OperationError{
				Op:     "start",
				Module: CoreName,
				Err: fmt.Errorf("activator failed for `%s`: %w",
					CoreName, &container.TypeNotFoundError{Name: LoggerType}),
			}
		}
	}
	return bps
}

// NewLoggingFake returns a Fake pre-loaded with the LoggingStack fixtures.
func NewLoggingFake() *Fake {
	return New(LoggingStack()...)
}
