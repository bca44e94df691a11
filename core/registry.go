package core

import (
	stderrs "errors"
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/biojet1/ocli/errors"
	"github.com/biojet1/ocli/internal/common"
)

// Registry is the validated, read-only spec list of a command type.
// It is safe for concurrent use.
type Registry struct {
	specs       []*Spec
	options     map[string]*Spec
	positionals []*Spec
	// reserve[i] is the sum of minimums of the positionals after i.
	reserve []int
	// choices holds the converted Choices of each spec that has them.
	choices map[*Spec][]any
}

// NewRegistry validates specs and indexes them for matching. Every defect
// found is reported in one ConfigurationError.
func NewRegistry(specs []*Spec) (*Registry, error) {
	r := &Registry{
		specs:   slices.Clone(specs),
		options: make(map[string]*Spec),
		choices: make(map[*Spec][]any),
	}

	var merr *multierror.Error
	appendDest := map[string]bool{}
	var greedy *Spec

	for _, s := range r.specs {
		switch s.Kind {
		case Positional:
			if s.Dest == "" && s.Call == "" {
				merr = multierror.Append(merr, fmt.Errorf("positional %s has neither dest nor handler", s.ID()))
			}
			if s.Greedy() {
				if greedy != nil {
					merr = multierror.Append(merr, fmt.Errorf("positional %s: %s is already greedy", s.ID(), greedy.ID()))
				} else {
					greedy = s
				}
			}
			r.positionals = append(r.positionals, s)
		case Named, Flag:
			if s.Name == "" && s.Short == "" {
				merr = multierror.Append(merr, fmt.Errorf("%s spec for dest %q has no option string", s.Kind, s.Dest))
				continue
			}
			if s.Multi == OneOrMore || s.Multi == ZeroOrMore {
				merr = multierror.Append(merr, fmt.Errorf("%s: multiplicity %q only applies to positionals", s.ID(), s.Multi))
			}
			if strings.HasPrefix(s.Name, "-") || strings.HasPrefix(s.Short, "-") {
				merr = multierror.Append(merr, fmt.Errorf("%s: option strings are declared without leading dashes", s.ID()))
			}
			for _, key := range s.optionKeys() {
				if prev, ok := r.options[key]; ok {
					merr = multierror.Append(merr, fmt.Errorf("%s declared by both %s and %s", key, prev.ID(), s.ID()))
					continue
				}
				r.options[key] = s
			}
		default:
			merr = multierror.Append(merr, fmt.Errorf("spec %q has unknown kind %d", s.Dest, int(s.Kind)))
			continue
		}

		for _, c := range s.Choices {
			v, err := s.convert(c)
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("%s: choice %q does not convert: %w", s.ID(), c, stderrs.Unwrap(err)))
				continue
			}
			r.choices[s] = append(r.choices[s], v)
		}

		if s.Dest == "" || s.Call != "" {
			continue
		}
		if mode, seen := appendDest[s.Dest]; seen && mode != s.Append {
			merr = multierror.Append(merr, fmt.Errorf("dest %q is both appended and overwritten (%s)", s.Dest, s.ID()))
		} else {
			appendDest[s.Dest] = s.Append
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, errors.NewConfiguration("", err)
	}

	r.reserve = make([]int, len(r.positionals))
	sum := 0
	for i := len(r.positionals) - 1; i >= 0; i-- {
		r.reserve[i] = sum
		sum += r.positionals[i].minimum()
	}
	return r, nil
}

// value converts raw for s and checks it against the spec's choices.
func (r *Registry) value(s *Spec, raw string) (any, error) {
	v, err := s.convert(raw)
	if err != nil {
		return nil, err
	}
	if len(s.Choices) == 0 {
		return v, nil
	}
	for _, c := range r.choices[s] {
		if sameValue(v, c) {
			return v, nil
		}
	}
	return nil, errors.NewInvalidChoice(raw, s.ID(), s.Choices)
}

func sameValue(a, b any) bool {
	if x, ok := a.(*big.Int); ok {
		y, ok := b.(*big.Int)
		return ok && x.Cmp(y) == 0
	}
	return reflect.DeepEqual(a, b)
}

// Specs returns the specs in declaration order. The specs must not be modified.
func (r *Registry) Specs() []*Spec { return slices.Clone(r.specs) }

// Positionals returns the positional specs in matching order.
func (r *Registry) Positionals() []*Spec { return slices.Clone(r.positionals) }

// Lookup finds the spec declared for an option string such as "--name" or "-x".
func (r *Registry) Lookup(option string) (*Spec, bool) {
	s, ok := r.options[option]
	return s, ok
}

// suggest returns the declared option string closest to option.
func (r *Registry) suggest(option string) string {
	candidates := make([]string, 0, len(r.options))
	for key := range r.options {
		candidates = append(candidates, key)
	}
	slices.Sort(candidates)
	return common.ClosestMatch(option, candidates)
}

var registries sync.Map // reflect.Type -> *Registry

// Resolve returns the registry for cmd's concrete type, building it from
// the Options chain on first use.
func Resolve(cmd Command) (*Registry, error) {
	t := reflect.TypeOf(cmd)
	if r, ok := registries.Load(t); ok {
		return r.(*Registry), nil
	}
	o := cmd.Options(&Opt{})
	if o == nil {
		return nil, errors.NewConfiguration(t.String(), fmt.Errorf("Options returned a nil *Opt"))
	}
	r, err := NewRegistry(o.specs)
	if err != nil {
		return nil, err
	}
	actual, _ := registries.LoadOrStore(t, r)
	return actual.(*Registry), nil
}
