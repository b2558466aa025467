package harness

import (
	"context"
	"errors"

	"github.com/harwick/modlift/pkg/container"
)

// ApplyTolerant invokes op on a single handle, treating one specific
// expected failure as non-fatal. If the operation fails and the cause
// exactly two levels beneath the returned error matches acceptable, the
// error is swallowed and the module's state is left to whatever the
// container reports. Any other failure is returned unchanged.
//
// The inspection depth is fixed at two unwraps, matching how containers
// nest an activator's root cause beneath the operation error. Causes at
// any other depth are not inspected.
func (d *Driver) ApplyTolerant(ctx context.Context, op Operation, m container.Module, acceptable func(error) bool) error {
	err := op.Do(ctx, m)
	if err == nil {
		return nil
	}
	if cause := errors.Unwrap(err); cause != nil {
		if root := errors.Unwrap(cause); root != nil && acceptable(root) {
			d.log.Debug().
				Str("module", m.SymbolicName()).
				Str("op", op.Name).
				AnErr("tolerated", err).
				Msg("expected failure tolerated")
			return nil
		}
	}
	return err
}

// TypeNotFound returns a tolerance predicate matching a loading failure
// for exactly the named type. The match is on the error's concrete type,
// not on anything further down a chain, so tolerance stays narrow.
func TypeNotFound(name string) func(error) bool {
	return func(err error) bool {
		tnf, ok := err.(*container.TypeNotFoundError)
		return ok && tnf.Name == name
	}
}
