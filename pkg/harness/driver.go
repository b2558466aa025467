package harness

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harwick/modlift/pkg/container"
)

// Operation is a named lifecycle transition applied to exactly one module
// handle. The predefined Start, Stop and Uninstall cover the standard
// machine; any container-defined transition can be passed as well.
type Operation struct {
	Name string
	Do   func(ctx context.Context, m container.Module) error
}

var (
	// Start activates a module.
	Start = Operation{Name: "start", Do: func(ctx context.Context, m container.Module) error {
		return m.Start(ctx)
	}}

	// Stop deactivates a module.
	Stop = Operation{Name: "stop", Do: func(ctx context.Context, m container.Module) error {
		return m.Stop(ctx)
	}}

	// Uninstall removes a module. Terminal.
	Uninstall = Operation{Name: "uninstall", Do: func(ctx context.Context, m container.Module) error {
		return m.Uninstall(ctx)
	}}
)

// Driver applies lifecycle operations to module handles and verifies the
// container-reported state afterwards. It holds no mutable state across
// calls; all module state is owned by the container.
type Driver struct {
	log zerolog.Logger
}

// NewDriver creates a Driver logging transitions to the given logger.
func NewDriver(log zerolog.Logger) *Driver {
	return &Driver{log: log}
}

// ApplyAndVerify invokes op on each handle in order and checks that the
// handle then reports the expected state.
//
// The first operation error aborts the remaining handles immediately,
// wrapped with the offending module's identity. A state mismatch fails
// with *StateMismatchError. An empty handle sequence is a no-op.
func (d *Driver) ApplyAndVerify(ctx context.Context, op Operation, want container.State, modules ...container.Module) error {
	for _, m := range modules {
		if err := op.Do(ctx, m); err != nil {
			return fmt.Errorf("operation failure for module `%s`: %w", m.SymbolicName(), err)
		}
		got := m.State()
		if got != want {
			return &StateMismatchError{Module: m.SymbolicName(), Op: op.Name, Want: want, Got: got}
		}
		d.log.Debug().
			Str("module", m.SymbolicName()).
			Str("op", op.Name).
			Stringer("state", got).
			Msg("lifecycle transition verified")
	}
	return nil
}
