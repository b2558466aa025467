package harness

import (
	"context"
	"fmt"

	"github.com/harwick/modlift/pkg/container"
)

// DiscoveryProbe verifies service discovery across module boundaries: a
// locator type loaded from one module answers whether discovery is
// available, and an enumeration entrypoint loaded from a second module
// returns the discovered provider instances.
type DiscoveryProbe struct {
	Locator        container.Module // module exporting the locator type
	LocatorType    string
	Enumerator     container.Module // module exporting the enumeration entrypoint
	EnumeratorType string
}

// Available loads the locator type and invokes IsAvailable on it.
func (p *DiscoveryProbe) Available(ctx context.Context) (bool, error) {
	typ, err := p.Locator.LoadType(ctx, p.LocatorType)
	if err != nil {
		return false, fmt.Errorf("loading locator from `%s`: %w", p.Locator.SymbolicName(), err)
	}
	out, err := typ.Invoke(ctx, "IsAvailable")
	if err != nil {
		return false, fmt.Errorf("invoking %s.IsAvailable: %w", p.LocatorType, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("%s.IsAvailable returned %T, want bool", p.LocatorType, out)
	}
	return ok, nil
}

// Providers loads the enumeration entrypoint and invokes LoadProviders,
// returning the discovered provider instances.
func (p *DiscoveryProbe) Providers(ctx context.Context) ([]container.Provider, error) {
	typ, err := p.Enumerator.LoadType(ctx, p.EnumeratorType)
	if err != nil {
		return nil, fmt.Errorf("loading enumerator from `%s`: %w", p.Enumerator.SymbolicName(), err)
	}
	out, err := typ.Invoke(ctx, "LoadProviders")
	if err != nil {
		return nil, fmt.Errorf("invoking %s.LoadProviders: %w", p.EnumeratorType, err)
	}
	providers, isSlice := out.([]container.Provider)
	if !isSlice {
		return nil, fmt.Errorf("%s.LoadProviders returned %T, want []container.Provider", p.EnumeratorType, out)
	}
	return providers, nil
}

// VerifySingleProvider asserts that discovery finds exactly one provider
// whose concrete type name matches wantType.
func (p *DiscoveryProbe) VerifySingleProvider(ctx context.Context, wantType string) error {
	providers, err := p.Providers(ctx)
	if err != nil {
		return err
	}
	if len(providers) != 1 {
		return fmt.Errorf("discovered %d providers, want exactly 1", len(providers))
	}
	if got := providers[0].TypeName(); got != wantType {
		return fmt.Errorf("discovered provider type %s, want %s", got, wantType)
	}
	return nil
}

// VerifyFragmentLoaders checks fragment attachment through loader identity:
// a type contributed by an attached fragment must be defined by the host's
// own loader, while a type reached through wiring must keep its exporting
// module's loader. All three types are loaded through the host handle.
func VerifyFragmentLoaders(ctx context.Context, host container.Module, fragmentType, hostType, wiredType string) error {
	fromFragment, err := host.LoadType(ctx, fragmentType)
	if err != nil {
		return fmt.Errorf("loading %s from `%s`: %w", fragmentType, host.SymbolicName(), err)
	}
	fromHost, err := host.LoadType(ctx, hostType)
	if err != nil {
		return fmt.Errorf("loading %s from `%s`: %w", hostType, host.SymbolicName(), err)
	}
	fromWire, err := host.LoadType(ctx, wiredType)
	if err != nil {
		return fmt.Errorf("loading %s from `%s`: %w", wiredType, host.SymbolicName(), err)
	}

	if fromFragment.Loader() != fromHost.Loader() {
		return fmt.Errorf("expected %s to share the loader of %s (fragment not attached to host)",
			fragmentType, hostType)
	}
	if fromFragment.Loader() == fromWire.Loader() {
		return fmt.Errorf("expected %s NOT to share the loader of %s (fragment leaked into wiring)",
			fragmentType, wiredType)
	}
	return nil
}
