package container

import (
	"fmt"
	"strings"
)

// Link locations follow the fixed convention produced by the packaging
// step: a logical module name maps to a classpath-relative link descriptor.
const (
	linkPrefix = "link:classpath:"
	linkSuffix = ".link"
)

// LinkLocation returns the install location for a logical module name.
func LinkLocation(name string) string {
	return linkPrefix + name + linkSuffix
}

// ParseLinkLocation extracts the logical module name from a link location.
func ParseLinkLocation(location string) (string, error) {
	if !strings.HasPrefix(location, linkPrefix) || !strings.HasSuffix(location, linkSuffix) {
		return "", fmt.Errorf("malformed link location %q", location)
	}
	name := strings.TrimSuffix(strings.TrimPrefix(location, linkPrefix), linkSuffix)
	if name == "" {
		return "", fmt.Errorf("malformed link location %q", location)
	}
	return name, nil
}
