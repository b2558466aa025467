package conformance

import (
	"context"
	"fmt"

	"github.com/harwick/modlift/pkg/container"
	"github.com/harwick/modlift/pkg/container/containertest"
	"github.com/harwick/modlift/pkg/harness"
)

// StartStopCycle drives the api and core modules through two full
// start/stop cycles and a final uninstall, asserting the reported state
// after every step. Stops and uninstalls run in reverse install order.
func StartStopCycle() *harness.Scenario {
	api, core := containertest.APIName, containertest.CoreName
	return &harness.Scenario{
		Name:    "start-stop-cycle",
		Fixture: FixtureLogging,
		Steps: []harness.Step{
			{Op: "install", Expect: "installed", Modules: []string{api, core}},
			{Op: "start", Expect: "active", Modules: []string{api, core}},
			{Op: "stop", Expect: "resolved", Modules: []string{core, api}},
			{Op: "start", Expect: "active", Modules: []string{api, core}},
			{Op: "stop", Expect: "resolved", Modules: []string{core, api}},
			{Op: "uninstall", Expect: "uninstalled", Modules: []string{core, api}},
		},
	}
}

// ToleratedActivationFailure starts core against a container that reports
// an activation error bottoming out in a missing-type failure while still
// activating the module. The specific missing type is tolerated; the
// module must end up active regardless.
func ToleratedActivationFailure() *harness.Scenario {
	api, core := containertest.APIName, containertest.CoreName
	return &harness.Scenario{
		Name:    "tolerated-activation-failure",
		Fixture: FixtureLazyActivation,
		Steps: []harness.Step{
			{Op: "install", Expect: "installed", Modules: []string{api, core}},
			{Op: "start", Expect: "active", Modules: []string{api}},
			{Op: "start", Expect: "active", Modules: []string{core}, Tolerate: containertest.LoggerType},
			{Op: "stop", Expect: "resolved", Modules: []string{core, api}},
			{Op: "uninstall", Expect: "uninstalled", Modules: []string{core, api}},
		},
	}
}

// FragmentAttachment verifies that a fragment's types are defined by its
// host's loader while wired types keep the exporting module's loader, then
// winds the stack back down.
func FragmentAttachment() *harness.Scenario {
	api, core, compat := containertest.APIName, containertest.CoreName, containertest.CompatName
	return &harness.Scenario{
		Name:    "fragment-attachment",
		Fixture: FixtureLogging,
		Steps: []harness.Step{
			{Op: "install", Expect: "installed", Modules: []string{api, core, compat}},
			{Op: "start", Expect: "active", Modules: []string{api, core}},
		},
		Verify: func(ctx context.Context, s *harness.Session) error {
			host, ok := s.Handle(core)
			if !ok {
				return fmt.Errorf("module %q was never installed in this scenario", core)
			}
			err := harness.VerifyFragmentLoaders(ctx, host,
				containertest.CompatLevelType, containertest.CoreType, containertest.LevelType)
			if err != nil {
				return err
			}
			if err := applyByName(ctx, s, harness.Stop, container.Resolved, core, api); err != nil {
				return err
			}
			return applyByName(ctx, s, harness.Uninstall, container.Uninstalled, compat, core, api)
		},
	}
}

// ServiceDiscovery checks the discovery locator before any module starts,
// starts the full stack, and asserts that enumeration finds exactly one
// provider of the expected concrete type.
func ServiceDiscovery() *harness.Scenario {
	api, core, apitest := containertest.APIName, containertest.CoreName, containertest.APITestName
	return &harness.Scenario{
		Name:    "service-discovery",
		Fixture: FixtureLogging,
		Steps: []harness.Step{
			{Op: "install", Expect: "installed", Modules: []string{api, core, apitest}},
		},
		Verify: func(ctx context.Context, s *harness.Session) error {
			apiMod, ok := s.Handle(api)
			if !ok {
				return fmt.Errorf("module %q was never installed in this scenario", api)
			}
			testMod, ok := s.Handle(apitest)
			if !ok {
				return fmt.Errorf("module %q was never installed in this scenario", apitest)
			}
			probe := &harness.DiscoveryProbe{
				Locator:        apiMod,
				LocatorType:    containertest.LocatorType,
				Enumerator:     testMod,
				EnumeratorType: containertest.EnumeratorType,
			}
			available, err := probe.Available(ctx)
			if err != nil {
				return err
			}
			if !available {
				return fmt.Errorf("discovery locator reports unavailable")
			}
			if err := applyByName(ctx, s, harness.Start, container.Active, api, core, apitest); err != nil {
				return err
			}
			if err := probe.VerifySingleProvider(ctx, containertest.ProviderType); err != nil {
				return err
			}
			if err := applyByName(ctx, s, harness.Stop, container.Resolved, apitest, core, api); err != nil {
				return err
			}
			return applyByName(ctx, s, harness.Uninstall, container.Uninstalled, apitest, core, api)
		},
	}
}

// All returns the built-in scenario bank.
func All() []*harness.Scenario {
	return []*harness.Scenario{
		StartStopCycle(),
		ToleratedActivationFailure(),
		FragmentAttachment(),
		ServiceDiscovery(),
	}
}

// applyByName resolves session handles by logical name and applies the
// operation through the session driver.
func applyByName(ctx context.Context, s *harness.Session, op harness.Operation, want container.State, names ...string) error {
	modules := make([]container.Module, 0, len(names))
	for _, name := range names {
		m, ok := s.Handle(name)
		if !ok {
			return fmt.Errorf("module %q was never installed in this scenario", name)
		}
		modules = append(modules, m)
	}
	return s.Driver().ApplyAndVerify(ctx, op, want, modules...)
}
