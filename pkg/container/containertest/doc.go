// Package containertest provides a scripted in-memory container for testing
// code that drives module lifecycles. It follows the standard library
// pattern (like net/http/httptest) of shipping a testable fake alongside
// the abstraction it implements.
//
// The core type is Fake, a container.Container built from Blueprints that
// declare a module's exports, requirements, fragment attachment, and
// service-provider contributions. The fake enforces the lifecycle state
// machine and supports error injection through per-blueprint StartFn
// overrides.
//
// Usage:
//
//	f := containertest.New(containertest.LoggingStack()...)
//	defer f.Close()
//
//	api, err := f.Install(ctx, container.LinkLocation(containertest.APIName))
//	// drive api through start/stop/uninstall and assert api.State()
package containertest
