package core

import (
	"slices"
	"strings"

	"github.com/biojet1/ocli/errors"
)

// Kind is the matching style of a Spec.
type Kind int

const (
	// Positional specs are matched by position.
	Positional Kind = iota
	// Named specs take exactly one value.
	Named
	// Flag specs bind a constant and take no value.
	Flag
)

func (k Kind) String() string {
	switch k {
	case Positional:
		return "positional"
	case Named:
		return "named"
	case Flag:
		return "flag"
	}
	return "unknown"
}

// Multiplicity is how often a spec must or may match.
type Multiplicity int

const (
	// Optional specs may match once and are never enforced.
	Optional Multiplicity = iota
	// Required specs must bind their dest at least once.
	Required
	// OneOrMore ("+") positionals take one or more tokens.
	OneOrMore
	// ZeroOrMore ("*") positionals take any number of tokens.
	ZeroOrMore
)

func (m Multiplicity) String() string {
	switch m {
	case Required:
		return "required"
	case OneOrMore:
		return "+"
	case ZeroOrMore:
		return "*"
	}
	return ""
}

// Converter turns a raw token into a typed value.
type Converter func(string) (any, error)

// HandlerID names a handler in a command's handler table.
type HandlerID string

// Spec describes how one argument is matched and where its value goes.
// A Spec is not modified once its Registry has been built.
type Spec struct {
	Kind       Kind
	Name       string
	Short      string
	Dest       string
	Type       Converter
	Default    any
	HasDefault bool
	Multi      Multiplicity
	Append     bool
	Choices    []string
	Const      any
	Call       HandlerID
	Help       string
	Metavar    string
}

// SpecOption sets one attribute of a Spec while it is being declared.
type SpecOption func(*Spec)

// Short sets the single-dash form. One character makes it usable inside
// clusters (-abc); more than one declares a literal option such as -yyy.
func Short(s string) SpecOption { return func(sp *Spec) { sp.Short = s } }

// Dest overrides the destination name.
func Dest(d string) SpecOption { return func(sp *Spec) { sp.Dest = d } }

// Type sets the converter applied to every matched value.
func Type(c Converter) SpecOption { return func(sp *Spec) { sp.Type = c } }

// Default sets the value used when the dest is never bound.
func Default(v any) SpecOption {
	return func(sp *Spec) {
		sp.Default = v
		sp.HasDefault = true
	}
}

// Multi sets the multiplicity.
func Multi(m Multiplicity) SpecOption { return func(sp *Spec) { sp.Multi = m } }

// Require marks the spec as required.
func Require() SpecOption { return Multi(Required) }

// Append makes matches accumulate, in encounter order, into dest.
// An empty dest keeps the spec's own dest.
func Append(dest string) SpecOption {
	return func(sp *Spec) {
		sp.Append = true
		if dest != "" {
			sp.Dest = dest
		}
	}
}

// Choices restricts the accepted values. Choices are converted with the
// spec's Type and compared after conversion, so "01" matches "1" for an
// integer spec.
func Choices(c ...string) SpecOption {
	return func(sp *Spec) { sp.Choices = slices.Clone(c) }
}

// Const sets the value a Flag binds. The default is true.
func Const(v any) SpecOption { return func(sp *Spec) { sp.Const = v } }

// Call routes every matched value to the handler registered under id
// instead of binding it.
func Call(id HandlerID) SpecOption { return func(sp *Spec) { sp.Call = id } }

// Help sets the description shown by usage renderers.
func Help(text string) SpecOption { return func(sp *Spec) { sp.Help = text } }

// Metavar sets the value placeholder shown by usage renderers.
func Metavar(m string) SpecOption { return func(sp *Spec) { sp.Metavar = m } }

// ID is the identity used in errors and usage: "--name", "-x" or the
// positional's metavar.
func (s *Spec) ID() string {
	if s.Kind == Positional {
		return s.DisplayName()
	}
	if s.Name != "" {
		return "--" + s.Name
	}
	return "-" + s.Short
}

// DisplayName is the upper-cased placeholder for the spec's value.
func (s *Spec) DisplayName() string {
	switch {
	case s.Metavar != "":
		return s.Metavar
	case s.Kind == Positional && s.Name != "":
		return strings.ToUpper(s.Name)
	case s.Dest != "":
		return strings.ToUpper(s.Dest)
	case s.Name != "":
		return strings.ToUpper(s.Name)
	case s.Call != "":
		return strings.ToUpper(string(s.Call))
	}
	return "ARG"
}

// Greedy reports whether the positional takes a variable number of tokens.
func (s *Spec) Greedy() bool {
	return s.Kind == Positional && (s.Multi == OneOrMore || s.Multi == ZeroOrMore || s.Append)
}

// minimum is the number of tokens the spec needs to be satisfied.
func (s *Spec) minimum() int {
	if s.Multi == Required || s.Multi == OneOrMore {
		return 1
	}
	return 0
}

// constValue is what a Flag binds.
func (s *Spec) constValue() any {
	if s.Const == nil {
		return true
	}
	return s.Const
}

// convert applies the spec's converter to raw.
func (s *Spec) convert(raw string) (any, error) {
	if s.Type == nil {
		return raw, nil
	}
	v, err := s.Type(raw)
	if err != nil {
		return nil, errors.NewConversion(raw, s.ID(), err)
	}
	return v, nil
}

// optionKeys are the strings the spec is matched by.
func (s *Spec) optionKeys() []string {
	var keys []string
	if s.Name != "" {
		keys = append(keys, "--"+s.Name)
	}
	if s.Short != "" {
		keys = append(keys, "-"+s.Short)
	}
	return keys
}
