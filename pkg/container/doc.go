// Package container defines the abstraction over a dynamic-module runtime:
// a Container hosting Modules with isolated type loaders, an enumerated
// lifecycle State per module, and a Type capability for cross-module
// dynamic invocation.
//
// The package contains interfaces and error types only. A real runtime is
// an external collaborator; containertest provides a scripted in-memory
// implementation for tests and conformance runs.
package container
