package containertest

import (
	"context"
	"fmt"

	"github.com/harwick/modlift/pkg/container"
)

// FakeModule is a handle to one installed blueprint instance. It implements
// container.Module and enforces the lifecycle state machine:
//
//	installed → active (start, via resolution), active → resolved (stop),
//	installed|resolved → uninstalled (uninstall, terminal).
type FakeModule struct {
	fake      *Fake
	id        string
	blueprint *Blueprint
	state     container.State
}

func (m *FakeModule) ID() string {
	return m.id
}

func (m *FakeModule) SymbolicName() string {
	return m.blueprint.SymbolicName
}

func (m *FakeModule) State() container.State {
	m.fake.mu.Lock()
	defer m.fake.mu.Unlock()
	return m.state
}

// SetState overrides the module's state directly. Intended for StartFn
// scripts that need to model containers activating a module despite a
// reported start failure.
func (m *FakeModule) SetState(s container.State) {
	m.fake.mu.Lock()
	defer m.fake.mu.Unlock()
	m.state = s
}

// Start resolves the module's wiring and activates it. A requirement with
// no installed exporter fails with an OperationError whose cause chain
// bottoms out in TypeNotFoundError, leaving the state unchanged. Starting
// an active module is a no-op; fragments cannot be started.
func (m *FakeModule) Start(ctx context.Context) error {
	f := m.fake
	f.mu.Lock()

	if err := m.operable("start"); err != nil {
		f.mu.Unlock()
		return err
	}
	if m.state == container.Active {
		f.mu.Unlock()
		return nil
	}
	bp := m.blueprint
	if bp.FragmentHost != "" {
		f.mu.Unlock()
		return &container.OperationError{
			Op:     "start",
			Module: bp.SymbolicName,
			Err:    fmt.Errorf("fragment of `%s` cannot be started", bp.FragmentHost),
		}
	}
	if bp.StartFn != nil {
		// Scripted start runs without the lock so it can use SetState.
		f.mu.Unlock()
		return bp.StartFn(m)
	}

	for _, req := range bp.Requires {
		if f.exporterOf(req) == nil {
			f.mu.Unlock()
			return &container.OperationError{
				Op:     "start",
				Module: bp.SymbolicName,
				Err: fmt.Errorf("cannot resolve wiring for `%s`: %w",
					bp.SymbolicName, &container.TypeNotFoundError{Name: req}),
			}
		}
	}
	m.state = container.Active
	f.mu.Unlock()
	return nil
}

// Stop deactivates an active module. Stopping a module that is not active
// is a no-op.
func (m *FakeModule) Stop(ctx context.Context) error {
	f := m.fake
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := m.operable("stop"); err != nil {
		return err
	}
	if m.state == container.Active {
		m.state = container.Resolved
	}
	return nil
}

// Uninstall removes the module. The handle stays queryable but every
// further operation fails.
func (m *FakeModule) Uninstall(ctx context.Context) error {
	f := m.fake
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := m.operable("uninstall"); err != nil {
		return err
	}
	m.state = container.Uninstalled
	return nil
}

// operable rejects operations on uninstalled modules and closed sessions.
// Caller holds f.mu.
func (m *FakeModule) operable(op string) error {
	if m.fake.closed {
		return &container.OperationError{Op: op, Module: m.blueprint.SymbolicName,
			Err: fmt.Errorf("container session closed")}
	}
	if m.state == container.Uninstalled {
		return &container.OperationError{Op: op, Module: m.blueprint.SymbolicName,
			Err: fmt.Errorf("module is uninstalled")}
	}
	return nil
}

// LoadType resolves a type through this module's loader. Own exports and
// attached fragment exports are defined by this module's loader; wired
// requirements resolve to the exporting module's loader.
func (m *FakeModule) LoadType(ctx context.Context, name string) (container.Type, error) {
	f := m.fake
	f.mu.Lock()
	defer f.mu.Unlock()

	if m.state == container.Uninstalled {
		return nil, &container.OperationError{Op: "loadtype", Module: m.blueprint.SymbolicName,
			Err: fmt.Errorf("module is uninstalled")}
	}

	if m.exports(name) {
		return &fakeType{fake: f, defining: m, name: name, loader: m.id}, nil
	}
	for _, frag := range f.fragmentsOf(m.blueprint.SymbolicName) {
		if frag.exports(name) {
			// Fragment types are defined by the host's loader.
			return &fakeType{fake: f, defining: frag, name: name, loader: m.id}, nil
		}
	}
	for _, req := range m.blueprint.Requires {
		if req != name {
			continue
		}
		if exp := f.exporterOf(name); exp != nil {
			return &fakeType{fake: f, defining: exp, name: name, loader: exp.id}, nil
		}
	}
	return nil, &container.TypeNotFoundError{Name: name}
}

// exports reports whether the module's blueprint exports the type name.
func (m *FakeModule) exports(name string) bool {
	for _, exp := range m.blueprint.Exports {
		if exp == name {
			return true
		}
	}
	return false
}

// fakeType is a dynamically loaded type. Invoke dispatches the two
// discovery entrypoints the fake understands.
type fakeType struct {
	fake     *Fake
	defining *FakeModule
	name     string
	loader   string
}

func (t *fakeType) Name() string {
	return t.name
}

func (t *fakeType) Loader() string {
	return t.loader
}

func (t *fakeType) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	f := t.fake
	f.mu.Lock()
	defer f.mu.Unlock()

	bp := t.defining.blueprint
	switch {
	case t.name == bp.Locator && method == "IsAvailable":
		return f.DiscoveryAvailable, nil
	case t.name == bp.Enumerator && method == "LoadProviders":
		return f.activeProviders(), nil
	default:
		return nil, fmt.Errorf("no invocable method %s.%s", t.name, method)
	}
}
