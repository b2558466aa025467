package harness

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwick/modlift/pkg/container"
	"github.com/harwick/modlift/pkg/container/containertest"
)

// failingStart builds a start blueprint returning the given error and
// activating the module, mirroring lazy-activation containers.
func failingStart(name string, startErr error) *containertest.Blueprint {
	return &containertest.Blueprint{
		SymbolicName: name,
		StartFn: func(m *containertest.FakeModule) error {
			m.SetState(container.Active)
			return startErr
		},
	}
}

// wrapTwice nests a root cause exactly two levels beneath the top error.
func wrapTwice(root error) error {
	return fmt.Errorf("start failed: %w", fmt.Errorf("activator failed: %w", root))
}

func TestApplyTolerantSwallowsMatchingCause(t *testing.T) {
	startErr := wrapTwice(&container.TypeNotFoundError{Name: "com.acme.logging.Logger"})
	f := containertest.New(failingStart("com.acme.mod", startErr))
	defer f.Close()

	m := install(t, f, "com.acme.mod")
	err := newTestDriver().ApplyTolerant(context.Background(), Start, m,
		TypeNotFound("com.acme.logging.Logger"))

	require.NoError(t, err, "matching cause must be tolerated")
	assert.Equal(t, container.Active, m.State(), "state is whatever the container reports")
}

func TestApplyTolerantReturnsNonMatchingErrorUnchanged(t *testing.T) {
	startErr := wrapTwice(&container.TypeNotFoundError{Name: "com.acme.logging.Other"})
	f := containertest.New(failingStart("com.acme.mod", startErr))
	defer f.Close()

	m := install(t, f, "com.acme.mod")
	err := newTestDriver().ApplyTolerant(context.Background(), Start, m,
		TypeNotFound("com.acme.logging.Logger"))

	require.Error(t, err)
	assert.Same(t, startErr, err, "non-tolerated errors must be re-returned unchanged")
}

func TestApplyTolerantInspectsExactlyTwoLevels(t *testing.T) {
	tnf := &container.TypeNotFoundError{Name: "com.acme.logging.Logger"}
	tests := []struct {
		name     string
		startErr error
		tolerate bool
	}{
		{
			name:     "cause one level deep is not inspected",
			startErr: fmt.Errorf("start failed: %w", tnf),
			tolerate: false,
		},
		{
			name:     "cause two levels deep is tolerated",
			startErr: wrapTwice(tnf),
			tolerate: true,
		},
		{
			name:     "cause three levels deep is not inspected",
			startErr: fmt.Errorf("outer: %w", wrapTwice(tnf)),
			tolerate: false,
		},
		{
			name:     "no cause chain at all",
			startErr: fmt.Errorf("start failed"),
			tolerate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := containertest.New(failingStart("com.acme.mod", tt.startErr))
			defer f.Close()

			m := install(t, f, "com.acme.mod")
			err := newTestDriver().ApplyTolerant(context.Background(), Start, m,
				TypeNotFound("com.acme.logging.Logger"))

			if tt.tolerate {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Same(t, tt.startErr, err)
			}
		})
	}
}

func TestApplyTolerantSuccessNeedsNoPredicateMatch(t *testing.T) {
	f := containertest.NewLoggingFake()
	defer f.Close()

	api := install(t, f, containertest.APIName)
	err := newTestDriver().ApplyTolerant(context.Background(), Start, api,
		func(error) bool { return false })
	require.NoError(t, err)
}

func TestTypeNotFoundPredicateIsNarrow(t *testing.T) {
	pred := TypeNotFound("com.acme.logging.Logger")

	assert.True(t, pred(&container.TypeNotFoundError{Name: "com.acme.logging.Logger"}))
	assert.False(t, pred(&container.TypeNotFoundError{Name: "com.acme.logging.Level"}))
	assert.False(t, pred(fmt.Errorf("type not found: com.acme.logging.Logger")),
		"predicate must match the concrete type, not the message")
	// A wrapper holding a matching error deeper down must not match either.
	assert.False(t, pred(fmt.Errorf("wrapped: %w", &container.TypeNotFoundError{Name: "com.acme.logging.Logger"})))
}
