// Package conformance holds the built-in scenario bank exercised against
// the reference in-memory container. The four scenarios cover the full
// lifecycle cycle, tolerated activation failure, fragment attachment, and
// service-provider discovery.
package conformance
