package container

import "fmt"

// State is a module lifecycle state as reported by a container.
//
// Valid transitions are driven externally by operations on a handle:
//
//	installed → resolved → active   (start)
//	active → resolved               (stop)
//	resolved|installed → uninstalled (uninstall, terminal)
type State int

const (
	// Installed means the module is registered but its wiring is unresolved.
	Installed State = iota
	// Resolved means the module's requirements are wired and it can start.
	Resolved
	// Active means the module has been started.
	Active
	// Uninstalled is terminal; the handle stays queryable but no
	// operations are valid anymore.
	Uninstalled
)

var stateNames = map[State]string{
	Installed:   "installed",
	Resolved:    "resolved",
	Active:      "active",
	Uninstalled: "uninstalled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState maps a state name back to its State value.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown lifecycle state %q", name)
}
