package container

import "fmt"

// InstallError reports that a module could not be installed or resolved
// from its location (missing artifact, malformed descriptor).
type InstallError struct {
	Location string // install location that failed
	Err      error  // underlying cause, may be nil
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot install module from %q: %v", e.Location, e.Err)
	}
	return fmt.Sprintf("cannot install module from %q", e.Location)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// OperationError reports that a lifecycle operation failed on a module.
// The module's state is whatever the container reports afterwards; a
// failed operation does not necessarily leave the state unchanged.
type OperationError struct {
	Op     string // operation name (e.g. "start", "stop", "uninstall")
	Module string // symbolic name of the offending module
	Err    error  // underlying cause, may be nil
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed for module `%s`: %v", e.Op, e.Module, e.Err)
	}
	return fmt.Sprintf("%s failed for module `%s`", e.Op, e.Module)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// TypeNotFoundError reports that a type could not be loaded through a
// module's loader. It appears both as a direct LoadType failure and nested
// inside start failures when wiring cannot satisfy a requirement.
type TypeNotFoundError struct {
	Name string // fully-qualified type name
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type not found: %s", e.Name)
}
