package core

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/biojet1/ocli/errors"
	"github.com/biojet1/ocli/internal/common"
)

var valueType = reflect.TypeOf(Value{})

// bindFields copies ns onto the `ocli`-tagged fields of cmd. Every
// conversion is checked before any field is written.
func bindFields(cmd any, ns Namespace) error {
	type assignment struct{ dst, src reflect.Value }
	var plan []assignment

	for _, f := range common.TaggedFields(cmd) {
		val := ns.Get(f.Dest)
		if f.Value.Type() == valueType {
			plan = append(plan, assignment{f.Value, reflect.ValueOf(val)})
			continue
		}
		if !val.IsSet() {
			continue
		}
		rv, err := convertTo(val.Any(), f.Value.Type())
		if err != nil {
			return errors.NewConfiguration(f.Name, fmt.Errorf("dest %q: %w", f.Dest, err))
		}
		plan = append(plan, assignment{f.Value, rv})
	}

	for _, a := range plan {
		a.dst.Set(a.src)
	}
	return nil
}

type family int

const (
	otherFamily family = iota
	boolFamily
	stringFamily
	intFamily
	uintFamily
	floatFamily
)

func familyOf(k reflect.Kind) family {
	switch k {
	case reflect.Bool:
		return boolFamily
	case reflect.String:
		return stringFamily
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intFamily
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uintFamily
	case reflect.Float32, reflect.Float64:
		return floatFamily
	}
	return otherFamily
}

// convertTo converts a bound value into a field of type t. Only lossless
// conversions within a kind family (and integer to float) are allowed.
func convertTo(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if b, ok := v.(*big.Int); ok {
		return bigTo(b, t)
	}

	if rv.Kind() == reflect.Slice && t.Kind() == reflect.Slice {
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := range rv.Len() {
			e, err := convertTo(rv.Index(i).Interface(), t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(e)
		}
		return out, nil
	}

	src, dst := familyOf(rv.Kind()), familyOf(t.Kind())
	out := reflect.New(t).Elem()
	switch {
	case src == otherFamily || dst == otherFamily:
	case src == dst && (src == boolFamily || src == stringFamily || src == floatFamily):
		return rv.Convert(t), nil
	case src == intFamily && dst == intFamily && !out.OverflowInt(rv.Int()):
		return rv.Convert(t), nil
	case src == intFamily && dst == uintFamily && rv.Int() >= 0 && !out.OverflowUint(uint64(rv.Int())):
		return rv.Convert(t), nil
	case src == uintFamily && dst == uintFamily && !out.OverflowUint(rv.Uint()):
		return rv.Convert(t), nil
	case src == uintFamily && dst == intFamily && rv.Uint() <= 1<<63-1 && !out.OverflowInt(int64(rv.Uint())):
		return rv.Convert(t), nil
	case (src == intFamily || src == uintFamily) && dst == floatFamily:
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot store %T in %s", v, t)
}

func bigTo(b *big.Int, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	switch familyOf(t.Kind()) {
	case intFamily:
		if b.IsInt64() && !out.OverflowInt(b.Int64()) {
			out.SetInt(b.Int64())
			return out, nil
		}
	case uintFamily:
		if b.IsUint64() && !out.OverflowUint(b.Uint64()) {
			out.SetUint(b.Uint64())
			return out, nil
		}
	case floatFamily:
		f, _ := new(big.Float).SetInt(b).Float64()
		out.SetFloat(f)
		return out, nil
	case stringFamily:
		out.SetString(b.String())
		return out, nil
	}
	return reflect.Value{}, fmt.Errorf("integer %s does not fit in %s", b, t)
}
