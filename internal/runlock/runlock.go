// Package runlock serializes whole harness runs. Concurrent runs sharing a
// container runtime would interleave sessions and corrupt state assertions,
// so the CLI holds an exclusive file lock for the duration of a run.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DefaultPath returns the lock file path used when none is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "modlift-run.lock")
}

// Acquire takes the exclusive run lock, failing immediately if another run
// holds it. The caller must Release the returned lock.
func Acquire(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create lock directory: %w", err)
	}
	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("cannot acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another run is active (lock: %s)", path)
	}
	return fl, nil
}

// Release drops the run lock. Safe to call with nil.
func Release(fl *flock.Flock) {
	if fl == nil {
		return
	}
	_ = fl.Unlock()
}
