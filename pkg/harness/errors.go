package harness

import (
	"fmt"

	"github.com/harwick/modlift/pkg/container"
)

// StateMismatchError reports a failed post-condition: after a successful
// operation the container reported a state other than the scenario's
// declared expectation.
type StateMismatchError struct {
	Module string          // symbolic name of the offending module
	Op     string          // operation that preceded the check
	Want   container.State // declared expected state
	Got    container.State // state the container reported
}

func (e *StateMismatchError) Error() string {
	return fmt.Sprintf("`%s` state mismatch after %s: expected %s, got %s",
		e.Module, e.Op, e.Want, e.Got)
}
