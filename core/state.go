package core

import (
	"reflect"
	"slices"
)

type destEntry struct {
	value  any
	count  int
	buffer []any
	append bool
}

// DestState tracks the values bound during one parse. Non-append dests keep
// the last value written; append dests keep every value in encounter order.
type DestState struct {
	dests map[string]*destEntry
	specs map[*Spec]int
}

func newDestState() *DestState {
	return &DestState{
		dests: make(map[string]*destEntry),
		specs: make(map[*Spec]int),
	}
}

func (s *DestState) entry(dest string) *destEntry {
	e, ok := s.dests[dest]
	if !ok {
		e = &destEntry{}
		s.dests[dest] = e
	}
	return e
}

// Set overwrites dest.
func (s *DestState) Set(dest string, v any) {
	e := s.entry(dest)
	e.value = v
	e.count++
}

// Append pushes v onto dest.
func (s *DestState) Append(dest string, v any) {
	e := s.entry(dest)
	e.append = true
	e.buffer = append(e.buffer, v)
	e.count++
}

// Get returns the current value of dest; append dests yield a copy of
// their buffer.
func (s *DestState) Get(dest string) (any, bool) {
	e, ok := s.dests[dest]
	if !ok {
		return nil, false
	}
	if e.append {
		return slices.Clone(e.buffer), true
	}
	return e.value, true
}

// Count is the number of bindings made to dest.
func (s *DestState) Count(dest string) int {
	if e, ok := s.dests[dest]; ok {
		return e.count
	}
	return 0
}

func (s *DestState) matched(sp *Spec) { s.specs[sp]++ }

func (s *DestState) matches(sp *Spec) int { return s.specs[sp] }

// namespace snapshots the bound values and fills defaults for the dests
// of reg that were never bound.
func (s *DestState) namespace(reg *Registry) Namespace {
	ns := Namespace{values: make(map[string]Value, len(s.dests))}
	for dest := range s.dests {
		v, _ := s.Get(dest)
		ns.values[dest] = Value{v: v, src: FromToken}
	}
	for _, sp := range reg.specs {
		if !sp.HasDefault || sp.Dest == "" {
			continue
		}
		if _, ok := ns.values[sp.Dest]; ok {
			continue
		}
		d := sp.Default
		if sp.Append {
			d = toAnySlice(d)
		}
		ns.values[sp.Dest] = Value{v: d, src: FromDefault}
	}
	return ns
}

// toAnySlice normalises a slice default so append dests always hold []any.
func toAnySlice(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return v
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Source tells where a Value came from.
type Source int

const (
	Unset Source = iota
	FromDefault
	FromToken
)

// Value is one dest of a parse result. The zero Value is unset, which is
// distinct from a default and from a bound falsy value.
type Value struct {
	v   any
	src Source
}

// IsSet reports whether the dest was bound or defaulted.
func (v Value) IsSet() bool { return v.src != Unset }

// Source reports where the value came from.
func (v Value) Source() Source { return v.src }

// Any returns the raw value; nil when unset.
func (v Value) Any() any { return v.v }

// Namespace is the set of dests produced by one parse.
type Namespace struct {
	values map[string]Value
}

// Get returns the Value for dest; unset if the dest was never bound and has
// no default.
func (n Namespace) Get(dest string) Value { return n.values[dest] }

// Lookup returns the value of dest and whether it is set.
func (n Namespace) Lookup(dest string) (any, bool) {
	v := n.values[dest]
	return v.v, v.IsSet()
}

// Dests lists the set dests in sorted order.
func (n Namespace) Dests() []string {
	out := make([]string, 0, len(n.values))
	for d := range n.values {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// Map returns the set dests and their values.
func (n Namespace) Map() map[string]any {
	out := make(map[string]any, len(n.values))
	for d, v := range n.values {
		out[d] = v.v
	}
	return out
}

// Get returns dest from n as a T. ok is false when the dest is unset or
// holds another type.
func Get[T any](n Namespace, dest string) (T, bool) {
	t, ok := n.values[dest].v.(T)
	return t, ok
}
