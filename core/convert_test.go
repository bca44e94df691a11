package core

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverters(t *testing.T) {
	v, err := Int("-340282366920938463463374607431768211456")
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("-340282366920938463463374607431768211456", 10)
	assert.Zero(t, want.Cmp(v.(*big.Int)))

	_, err = Int("0x10")
	assert.Error(t, err)

	v, err = Int64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = Float("1e3")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v)

	v, err = Bool("false")
	require.NoError(t, err)
	assert.Equal(t, false, v)
	_, err = Bool("yes")
	assert.Error(t, err)

	for raw, want := range map[string]bool{"": false, "0": true, "false": true, "x": true} {
		v, err := Truthy(raw)
		require.NoError(t, err)
		assert.Equal(t, want, v, raw)
	}

	v, err = Fields("  a b\tc ")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v)

	v, err = String("-x")
	require.NoError(t, err)
	assert.Equal(t, "-x", v)
}
