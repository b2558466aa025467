package container

import "context"

// Container is a running dynamic-module session. Implementations host
// modules, enforce the lifecycle state machine, and own all module state;
// callers hold Module handles only for the duration of a session.
type Container interface {
	// Install registers the module artifact at the given location and
	// returns a handle to the new instance. Installing the same location
	// twice produces two distinct handles; deduplication is never assumed.
	Install(ctx context.Context, location string) (Module, error)

	// Close tears down the session. All handles obtained from this
	// container are invalid afterwards.
	Close() error
}

// Module is a handle to one installed module instance.
//
// State reports whatever the container currently observes; handles never
// cache or infer state. Start, Stop and Uninstall may fail without a state
// change, or succeed and cause a transition.
type Module interface {
	// ID uniquely identifies this install instance within the session.
	ID() string

	// SymbolicName is the module's human-readable identifier, used in
	// error messages and logs.
	SymbolicName() string

	// State returns the current lifecycle state as reported by the container.
	State() State

	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Uninstall(ctx context.Context) error

	// LoadType resolves a type by fully-qualified name through this
	// module's loader, following fragment attachment and wiring.
	LoadType(ctx context.Context, name string) (Type, error)
}

// Type is a dynamically loaded type from a module, usable for
// cross-module invocation without static linkage.
type Type interface {
	// Name is the fully-qualified type name.
	Name() string

	// Loader identifies the type loader that defined this type. Two types
	// share a loader exactly when their Loader values are equal.
	Loader() string

	// Invoke calls a named static method on the type.
	Invoke(ctx context.Context, method string, args ...any) (any, error)
}

// Provider is a service provider instance discovered through the
// container's provider-enumeration mechanism.
type Provider interface {
	// TypeName is the fully-qualified name of the provider's concrete type.
	TypeName() string
}
