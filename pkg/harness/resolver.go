package harness

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/harwick/modlift/pkg/container"
)

// Resolver turns logical module names into installed handles. Names map to
// install locations through the fixed link scheme produced by the packaging
// step (see container.LinkLocation).
//
// Resolve is not idempotent: every call installs a distinct handle, and no
// container deduplication is assumed.
type Resolver struct {
	container container.Container
	log       zerolog.Logger
}

// NewResolver creates a Resolver installing through the given container.
func NewResolver(c container.Container, log zerolog.Logger) *Resolver {
	return &Resolver{container: c, log: log}
}

// Resolve installs the module registered under the logical name and
// returns its handle. Failures are always *container.InstallError.
func (r *Resolver) Resolve(ctx context.Context, logicalName string) (container.Module, error) {
	location := container.LinkLocation(logicalName)
	m, err := r.container.Install(ctx, location)
	if err != nil {
		var ie *container.InstallError
		if errors.As(err, &ie) {
			return nil, err
		}
		return nil, &container.InstallError{Location: location, Err: err}
	}
	r.log.Debug().
		Str("module", m.SymbolicName()).
		Str("location", location).
		Str("id", m.ID()).
		Msg("module installed")
	return m, nil
}
