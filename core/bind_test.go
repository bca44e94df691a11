package core

import (
	"math"
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTo(t *testing.T) {
	for _, c := range []struct {
		in   any
		want any
	}{
		{int64(5), int8(5)},
		{int64(5), uint(5)},
		{int64(5), 5.0},
		{[]any{"a", "b"}, []string{"a", "b"}},
		{true, true},
		{nil, ""},
	} {
		target := c.want
		got, err := convertTo(c.in, reflect.TypeOf(target))
		require.NoError(t, err, "%v", c.in)
		assert.Equal(t, c.want, got.Interface())
	}

	for _, c := range []struct {
		in     any
		target any
	}{
		{int64(300), int8(0)},
		{int64(-1), uint(0)},
		{"x", 0},
		{[]any{"a", 1}, []string{}},
		{1.5, 0},
	} {
		_, err := convertTo(c.in, reflect.TypeOf(c.target))
		assert.Error(t, err, "%v -> %T", c.in, c.target)
	}
}

func TestBigTo(t *testing.T) {
	huge, _ := new(big.Int).SetString("18446744073709551616", 10)

	v, err := bigTo(big.NewInt(math.MaxInt32), reflect.TypeOf(int32(0)))
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), v.Interface())

	_, err = bigTo(big.NewInt(math.MaxInt32+1), reflect.TypeOf(int32(0)))
	assert.Error(t, err)
	_, err = bigTo(huge, reflect.TypeOf(uint64(0)))
	assert.Error(t, err)

	v, err = bigTo(huge, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", v.Interface())

	v, err = bigTo(huge, reflect.TypeOf(0.0))
	require.NoError(t, err)
	assert.Equal(t, 18446744073709551616.0, v.Interface())
}
