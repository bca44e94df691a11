package core

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/biojet1/ocli/errors"
)

// binding is one value waiting to be applied to its spec. raw is unused
// for flags; token is the command-line token it came from.
type binding struct {
	spec  *Spec
	raw   string
	token string
}

// resolveOption maps an option token onto the bindings it produces,
// taking values from t where the option needs one. It never binds, so the
// dry run in positionalsAhead can share it.
func (r *Registry) resolveOption(tok Token, t *Tokenizer) ([]binding, error) {
	switch tok.Kind {
	case LongOption:
		key := "--" + tok.Name
		s, ok := r.Lookup(key)
		if !ok {
			return nil, errors.NewUnknownOption(tok.Raw, key, r.suggest(key))
		}
		if tok.HasValue {
			if s.Kind == Flag {
				return nil, errors.NewUnexpectedValue(tok.Raw, s.ID())
			}
			return []binding{{spec: s, raw: tok.Value, token: tok.Raw}}, nil
		}
		return r.resolveWhole(s, tok, t)

	case ShortCluster:
		codes := []rune(tok.Name)
		if len(codes) > 1 {
			if s, ok := r.Lookup(tok.Raw); ok {
				return r.resolveWhole(s, tok, t)
			}
		}
		var out []binding
		for i, c := range codes {
			key := "-" + string(c)
			s, ok := r.Lookup(key)
			if !ok {
				return nil, errors.NewUnknownOption(tok.Raw, key, r.suggest(key))
			}
			if s.Kind == Flag {
				out = append(out, binding{spec: s, token: tok.Raw})
				continue
			}
			if rest := string(codes[i+1:]); rest != "" {
				return append(out, binding{spec: s, raw: rest, token: tok.Raw}), nil
			}
			v, ok := t.Value()
			if !ok {
				return nil, errors.NewMissingValue(tok.Raw, s.ID())
			}
			return append(out, binding{spec: s, raw: v, token: tok.Raw}), nil
		}
		return out, nil
	}
	return nil, fmt.Errorf("token %q is not an option", tok.Raw)
}

// resolveWhole handles an option token naming exactly one spec.
func (r *Registry) resolveWhole(s *Spec, tok Token, t *Tokenizer) ([]binding, error) {
	if s.Kind == Flag {
		return []binding{{spec: s, token: tok.Raw}}, nil
	}
	v, ok := t.Value()
	if !ok {
		return nil, errors.NewMissingValue(tok.Raw, s.ID())
	}
	return []binding{{spec: s, raw: v, token: tok.Raw}}, nil
}

// positionalsAhead returns, indexed by argument position, how many
// positional tokens follow each positional token. The dry run stops at the
// first option that does not resolve and counts every later token as a
// positional, so nothing before the failing option yields early.
func (r *Registry) positionalsAhead(args []string) []int {
	var idx []int
	t := NewTokenizer(args)
scan:
	for {
		tok, ok := t.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case PositionalToken:
			idx = append(idx, tok.Index)
		case LongOption, ShortCluster:
			if _, err := r.resolveOption(tok, &t); err != nil {
				for i := tok.Index + 1; i < len(args); i++ {
					idx = append(idx, i)
				}
				break scan
			}
		}
	}
	ahead := make([]int, len(args))
	for j, i := range idx {
		ahead[i] = len(idx) - 1 - j
	}
	return ahead
}

// matcher runs one scan of the token stream against a registry.
type matcher struct {
	reg      *Registry
	handlers *Handlers
	state    *DestState
	log      hclog.Logger

	ahead []int
	pos   int
}

func newMatcher(reg *Registry, handlers *Handlers, log hclog.Logger) *matcher {
	return &matcher{
		reg:      reg,
		handlers: handlers,
		state:    newDestState(),
		log:      log,
	}
}

// run scans args, stopping at the first failure.
func (m *matcher) run(args []string) error {
	m.ahead = m.reg.positionalsAhead(args)
	t := NewTokenizer(args)
	for {
		tok, ok := t.Next()
		if !ok {
			return nil
		}
		switch tok.Kind {
		case Terminator:
			m.log.Trace("terminator", "index", tok.Index)
		case PositionalToken:
			if err := m.positional(tok); err != nil {
				return err
			}
		default:
			bindings, err := m.reg.resolveOption(tok, &t)
			if err != nil {
				return err
			}
			for _, b := range bindings {
				if err := m.bind(b); err != nil {
					return err
				}
			}
		}
	}
}

// positional routes tok to the next unsatisfied positional spec. A greedy
// spec keeps taking tokens while enough remain for the minimums of the
// positionals declared after it.
func (m *matcher) positional(tok Token) error {
	remaining := m.ahead[tok.Index] + 1
	for m.pos < len(m.reg.positionals) {
		s := m.reg.positionals[m.pos]
		if !s.Greedy() {
			m.pos++
			return m.bind(binding{spec: s, raw: tok.Raw, token: tok.Raw})
		}
		if remaining > m.reg.reserve[m.pos] {
			return m.bind(binding{spec: s, raw: tok.Raw, token: tok.Raw})
		}
		if s.minimum() > 0 && m.state.matches(s) == 0 {
			return errors.NewMissingPositional(s.ID())
		}
		m.pos++
	}
	return errors.NewUnexpectedPositional(tok.Raw)
}

func (m *matcher) bind(b binding) error {
	s := b.spec
	var v any
	if s.Kind == Flag {
		v = s.constValue()
	} else {
		var err error
		if v, err = m.reg.value(s, b.raw); err != nil {
			return err
		}
	}
	m.state.matched(s)

	if s.Call != "" {
		fn, ok := m.handlers.Lookup(s.Call)
		if !ok {
			return errors.NewConfiguration(s.ID(), fmt.Errorf("no handler registered for %q", s.Call))
		}
		m.log.Trace("call", "spec", s.ID(), "handler", s.Call, "token", b.token)
		return fn(Invocation{Spec: s, Value: v, Registry: m.reg})
	}

	if s.Append {
		m.state.Append(s.Dest, v)
	} else {
		m.state.Set(s.Dest, v)
	}
	m.log.Trace("bind", "spec", s.ID(), "dest", s.Dest, "token", b.token, "append", s.Append)
	return nil
}

// validate runs the end-of-input checks in declaration order.
func (m *matcher) validate() error {
	for _, s := range m.reg.specs {
		switch {
		case s.Kind == Positional && s.Multi == OneOrMore && m.state.matches(s) == 0:
			return errors.NewMissingPositional(s.ID())
		case s.Multi == Required && !m.bound(s):
			return errors.NewMissingRequired(s.ID())
		}
	}
	return nil
}

func (m *matcher) bound(s *Spec) bool {
	if s.Call != "" || s.Dest == "" {
		return m.state.matches(s) > 0
	}
	return m.state.Count(s.Dest) > 0
}
