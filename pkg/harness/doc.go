// Package harness drives modules in a dynamic-module container through
// lifecycle transitions and verifies the container-reported state after
// each one.
//
// The two working parts are the Resolver, which turns logical module names
// into installed handles, and the Driver, whose ApplyAndVerify applies an
// Operation to an ordered handle sequence fail-fast and checks the
// post-condition state. ApplyTolerant is the narrow escape hatch for one
// expected failure signature per step; everything else propagates.
//
// Scenario and Runner layer a declarative, YAML-loadable step sequence on
// top, producing a Report per run. Each run gets a fresh container session,
// released on all exit paths.
package harness
