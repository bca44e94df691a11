package core

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/biojet1/ocli/errors"
)

// Command is implemented by every type embedding Base. Options must depend
// only on the type, not on instance state: its result is cached per type.
type Command interface {
	Options(o *Opt) *Opt
	Handlers(h *Handlers)
	base() *Base
}

// Starter is the entry point invoked by Main after a successful parse.
type Starter interface {
	Start() error
}

// Base terminates the Options and Handlers chains and stores the result of
// the last successful parse.
type Base struct {
	ns Namespace
}

// Options is the end of the spec chain.
func (b *Base) Options(o *Opt) *Opt { return o }

// Handlers is the end of the handler chain.
func (b *Base) Handlers(h *Handlers) {}

// Namespace returns the dests bound by the last successful Main call.
func (b *Base) Namespace() Namespace { return b.ns }

func (b *Base) base() *Base { return b }

type mainConfig struct {
	logger hclog.Logger
}

// MainOption configures a single Main call.
type MainOption func(*mainConfig)

// WithLogger traces matching decisions to l.
func WithLogger(l hclog.Logger) MainOption {
	return func(c *mainConfig) { c.logger = l }
}

// Main parses args (without the program name) into cmd and runs its entry
// point. Nothing is written onto cmd, and Start is not called, unless the
// whole parse succeeds. Handler side effects happen as values are matched.
func Main[C Command](cmd C, args []string, opts ...MainOption) (C, error) {
	reg, err := Resolve(cmd)
	if err != nil {
		return cmd, err
	}

	handlers := &Handlers{}
	cmd.Handlers(handlers)
	ns, err := reg.Parse(args, handlers, opts...)
	if err != nil {
		return cmd, err
	}

	if err := bindFields(cmd, ns); err != nil {
		return cmd, err
	}
	cmd.base().ns = ns

	if s, ok := any(cmd).(Starter); ok {
		if err := s.Start(); err != nil {
			return cmd, err
		}
	}
	return cmd, nil
}

// Parse matches args against r and returns the resulting namespace,
// defaults included. handlers may be nil when no spec has a Call id.
func (r *Registry) Parse(args []string, handlers *Handlers, opts ...MainOption) (Namespace, error) {
	cfg := mainConfig{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.Named("ocli")

	if handlers == nil {
		handlers = &Handlers{}
	}
	for _, s := range r.specs {
		if s.Call == "" {
			continue
		}
		if _, ok := handlers.Lookup(s.Call); !ok {
			return Namespace{}, errors.NewConfiguration(s.ID(), fmt.Errorf("no handler registered for %q", s.Call))
		}
	}

	m := newMatcher(r, handlers, log)
	if err := m.run(slices.Clone(args)); err != nil {
		log.Debug("parse failed", "error", err)
		return Namespace{}, err
	}
	if err := m.validate(); err != nil {
		log.Debug("validation failed", "error", err)
		return Namespace{}, err
	}
	return m.state.namespace(r), nil
}

// Run is Main over os.Args[1:].
func Run[C Command](cmd C, opts ...MainOption) (C, error) {
	return Main(cmd, os.Args[1:], opts...)
}
