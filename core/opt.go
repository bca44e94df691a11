package core

import (
	"slices"
	"strings"
)

// Opt accumulates the ordered spec list of a command type. A command's
// Options method adds its own specs and then hands the Opt to its base's
// Options, so specs are recorded derived-first.
type Opt struct {
	specs []*Spec
}

// Arg declares a positional. name may be empty when Append or Call
// supplies the destination. A greedy positional only leaves tokens for the
// Required or OneOrMore positionals after it, so an optional positional
// declared after a "*" or Append positional never binds.
func (o *Opt) Arg(name string, opts ...SpecOption) *Opt {
	return o.add(&Spec{Kind: Positional, Name: name}, opts)
}

// Param declares a named option taking one value. A one-character name is
// the short form.
func (o *Opt) Param(name string, opts ...SpecOption) *Opt {
	return o.add(optionSpec(Named, name), opts)
}

// Flag declares a named option binding a constant.
func (o *Opt) Flag(name string, opts ...SpecOption) *Opt {
	return o.add(optionSpec(Flag, name), opts)
}

// Specs returns the declared specs in order.
func (o *Opt) Specs() []*Spec { return slices.Clone(o.specs) }

func optionSpec(kind Kind, name string) *Spec {
	if len([]rune(name)) == 1 {
		return &Spec{Kind: kind, Short: name, Dest: name}
	}
	return &Spec{Kind: kind, Name: name}
}

func (o *Opt) add(s *Spec, opts []SpecOption) *Opt {
	for _, opt := range opts {
		opt(s)
	}
	if s.Dest == "" {
		s.Dest = destName(s.Name)
	}
	o.specs = append(o.specs, s)
	return o
}

func destName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
