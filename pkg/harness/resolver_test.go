package harness

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwick/modlift/pkg/container"
	"github.com/harwick/modlift/pkg/container/containertest"
)

func TestResolveInstallsByLogicalName(t *testing.T) {
	f := containertest.NewLoggingFake()
	defer f.Close()

	r := NewResolver(f, zerolog.Nop())
	m, err := r.Resolve(context.Background(), containertest.APIName)
	require.NoError(t, err)
	assert.Equal(t, containertest.APIName, m.SymbolicName())
	assert.Equal(t, container.Installed, m.State())
}

func TestResolveIsNotIdempotent(t *testing.T) {
	f := containertest.NewLoggingFake()
	defer f.Close()

	r := NewResolver(f, zerolog.Nop())
	first, err := r.Resolve(context.Background(), containertest.CoreName)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), containertest.CoreName)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID(), "each Resolve installs a distinct handle")
}

func TestResolveUnknownNameFailsWithInstallError(t *testing.T) {
	f := containertest.NewLoggingFake()
	defer f.Close()

	r := NewResolver(f, zerolog.Nop())
	_, err := r.Resolve(context.Background(), "com.acme.unknown")

	var ie *container.InstallError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, container.LinkLocation("com.acme.unknown"), ie.Location)
}

// bareErrorContainer fails installs with a plain error, not *InstallError.
type bareErrorContainer struct {
	err error
}

func (c *bareErrorContainer) Install(ctx context.Context, location string) (container.Module, error) {
	return nil, c.err
}

func (c *bareErrorContainer) Close() error { return nil }

func TestResolveWrapsForeignErrors(t *testing.T) {
	cause := errors.New("runtime on fire")
	r := NewResolver(&bareErrorContainer{err: cause}, zerolog.Nop())

	_, err := r.Resolve(context.Background(), "com.acme.logging.api")

	var ie *container.InstallError
	require.ErrorAs(t, err, &ie)
	require.ErrorIs(t, err, cause)
}
