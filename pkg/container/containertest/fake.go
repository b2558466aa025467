package containertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/harwick/modlift/pkg/container"
)

// Blueprint describes a module artifact that a Fake can install. Blueprints
// are the fake's stand-in for packaged module archives: they declare what
// the module exports, what it requires from other modules, and what it
// contributes to service discovery.
type Blueprint struct {
	// SymbolicName identifies the artifact; Install locates blueprints by
	// the logical name parsed from the link location.
	SymbolicName string

	// Exports are the fully-qualified type names defined by this module's
	// own loader.
	Exports []string

	// Requires are type names that must be exported by some other installed
	// module for this module to resolve. A missing requirement makes Start
	// fail with a wiring error bottoming out in TypeNotFoundError.
	Requires []string

	// FragmentHost, when set, attaches this module to the named host: the
	// fragment's exports become loadable through the host's loader.
	FragmentHost string

	// Providers are provider type names this module contributes to service
	// discovery while it is active.
	Providers []string

	// Locator marks one exported type as the discovery availability probe:
	// invoking "IsAvailable" on it answers whether discovery works.
	Locator string

	// Enumerator marks one exported type as the provider enumeration
	// entrypoint: invoking "LoadProviders" on it returns the providers
	// contributed by all active modules.
	Enumerator string

	// StartFn, when set, replaces the default start behavior. The function
	// may mutate the module's state via SetState and return any error,
	// which Start hands back unchanged. Used to script activation failures.
	StartFn func(m *FakeModule) error
}

// Fake is an in-memory container session implementing the lifecycle state
// machine over scripted blueprints. It is a test double in the manner of
// httptest: deterministic, synchronous, and strict about invalid
// transitions.
//
// Every Install mints a fresh handle: installing the same location twice
// yields two distinct module instances, mirroring containers that do not
// deduplicate.
type Fake struct {
	mu         sync.Mutex
	blueprints map[string]*Blueprint
	modules    []*FakeModule // install order
	closed     bool

	// DiscoveryAvailable is what the locator type's IsAvailable reports.
	// Defaults to true.
	DiscoveryAvailable bool
}

// New creates a Fake with the given blueprints available for install.
func New(blueprints ...*Blueprint) *Fake {
	f := &Fake{
		blueprints:         make(map[string]*Blueprint, len(blueprints)),
		DiscoveryAvailable: true,
	}
	for _, bp := range blueprints {
		f.blueprints[bp.SymbolicName] = bp
	}
	return f
}

// Install implements container.Container. The location must be a link
// location naming a known blueprint.
func (f *Fake) Install(ctx context.Context, location string) (container.Module, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, &container.InstallError{Location: location, Err: fmt.Errorf("container session closed")}
	}
	name, err := container.ParseLinkLocation(location)
	if err != nil {
		return nil, &container.InstallError{Location: location, Err: err}
	}
	bp, ok := f.blueprints[name]
	if !ok {
		return nil, &container.InstallError{Location: location, Err: fmt.Errorf("no artifact for %q", name)}
	}

	m := &FakeModule{
		fake:      f,
		id:        uuid.NewString(),
		blueprint: bp,
		state:     container.Installed,
	}
	f.modules = append(f.modules, m)
	return m, nil
}

// Close tears down the session. Remaining handles become invalid: every
// subsequent operation on them fails.
func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Modules returns the installed module handles in install order.
func (f *Fake) Modules() []*FakeModule {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*FakeModule, len(f.modules))
	copy(out, f.modules)
	return out
}

// exporterOf finds the installed, non-uninstalled module whose blueprint
// exports the given type name. Caller holds f.mu.
func (f *Fake) exporterOf(typeName string) *FakeModule {
	for _, m := range f.modules {
		if m.state == container.Uninstalled {
			continue
		}
		for _, exp := range m.blueprint.Exports {
			if exp == typeName {
				return m
			}
		}
	}
	return nil
}

// fragmentsOf returns installed fragments attached to the given host
// module's symbolic name. Caller holds f.mu.
func (f *Fake) fragmentsOf(host string) []*FakeModule {
	var out []*FakeModule
	for _, m := range f.modules {
		if m.state != container.Uninstalled && m.blueprint.FragmentHost == host {
			out = append(out, m)
		}
	}
	return out
}

// activeProviders collects provider instances contributed by active
// modules, in install order. Caller holds f.mu.
func (f *Fake) activeProviders() []container.Provider {
	var out []container.Provider
	for _, m := range f.modules {
		if m.state != container.Active {
			continue
		}
		for _, p := range m.blueprint.Providers {
			out = append(out, provider{typeName: p})
		}
	}
	return out
}

// provider is a discovered service provider instance.
type provider struct {
	typeName string
}

func (p provider) TypeName() string {
	return p.typeName
}
