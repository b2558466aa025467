package harness

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/harwick/modlift/pkg/container"
)

// ContainerFactory produces a fresh container session for a scenario run.
// The fixture argument is the scenario's requested blueprint bank; an empty
// string selects the factory's default.
type ContainerFactory func(fixture string) (container.Container, error)

// Session holds the per-scenario state: the container, the handles
// registered by install steps, and the driver applying transitions.
// A session lives for exactly one scenario run.
type Session struct {
	container container.Container
	resolver  *Resolver
	driver    *Driver
	handles   map[string]container.Module
}

// Handle returns the module handle registered under a logical name.
func (s *Session) Handle(name string) (container.Module, bool) {
	m, ok := s.handles[name]
	return m, ok
}

// Driver returns the session's lifecycle driver.
func (s *Session) Driver() *Driver {
	return s.driver
}

// Container returns the session's container.
func (s *Session) Container() container.Container {
	return s.container
}

// Runner executes scenarios, one fresh container session each, releasing
// the session on every exit path.
type Runner struct {
	factory ContainerFactory
	log     zerolog.Logger
}

// NewRunner creates a Runner obtaining sessions from the given factory.
func NewRunner(factory ContainerFactory, log zerolog.Logger) *Runner {
	return &Runner{factory: factory, log: log}
}

// Run executes the scenario sequentially and fail-fast: the first step
// failure aborts the remaining steps. The returned report records every
// executed step and the first failure, if any.
func (r *Runner) Run(ctx context.Context, sc *Scenario) *Report {
	rep := &Report{Scenario: sc.Name, Total: len(sc.Steps)}

	c, err := r.factory(sc.Fixture)
	if err != nil {
		rep.Err = fmt.Errorf("acquiring container session: %w", err)
		return rep
	}
	defer c.Close()

	log := r.log.With().Str("scenario", sc.Name).Logger()
	sess := &Session{
		container: c,
		resolver:  NewResolver(c, log),
		driver:    NewDriver(log),
		handles:   make(map[string]container.Module),
	}

	for _, step := range sc.Steps {
		err := r.runStep(ctx, sess, step)
		rep.Results = append(rep.Results, StepResult{Desc: describeStep(step), Err: err})
		if err != nil {
			rep.Err = err
			return rep
		}
	}

	if sc.Verify != nil {
		err := sc.Verify(ctx, sess)
		rep.Results = append(rep.Results, StepResult{Desc: "verify", Err: err})
		rep.Total++
		if err != nil {
			rep.Err = err
		}
	}
	return rep
}

func (r *Runner) runStep(ctx context.Context, sess *Session, step Step) error {
	want, err := container.ParseState(step.Expect)
	if err != nil {
		return err
	}

	if step.Op == "install" {
		for _, name := range step.Modules {
			m, err := sess.resolver.Resolve(ctx, name)
			if err != nil {
				return err
			}
			sess.handles[name] = m
			if got := m.State(); got != want {
				return &StateMismatchError{Module: m.SymbolicName(), Op: step.Op, Want: want, Got: got}
			}
		}
		return nil
	}

	op, err := operationByName(step.Op)
	if err != nil {
		return err
	}
	modules := make([]container.Module, 0, len(step.Modules))
	for _, name := range step.Modules {
		m, ok := sess.handles[name]
		if !ok {
			return fmt.Errorf("module %q was never installed in this scenario", name)
		}
		modules = append(modules, m)
	}

	if step.Tolerate != "" {
		// Validate guarantees exactly one target here.
		m := modules[0]
		if err := sess.driver.ApplyTolerant(ctx, op, m, TypeNotFound(step.Tolerate)); err != nil {
			return fmt.Errorf("operation failure for module `%s`: %w", m.SymbolicName(), err)
		}
		if got := m.State(); got != want {
			return &StateMismatchError{Module: m.SymbolicName(), Op: op.Name, Want: want, Got: got}
		}
		return nil
	}
	return sess.driver.ApplyAndVerify(ctx, op, want, modules...)
}

func operationByName(name string) (Operation, error) {
	switch name {
	case "start":
		return Start, nil
	case "stop":
		return Stop, nil
	case "uninstall":
		return Uninstall, nil
	default:
		return Operation{}, fmt.Errorf("unknown operation %q", name)
	}
}
