package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(args ...string) []Token {
	var out []Token
	t := NewTokenizer(args)
	for {
		tok, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestTokenizer_Classification(t *testing.T) {
	toks := collect("file", "-", "-abc", "--name", "--name=v", "--x=", "--", "--after", "-z")
	require.Len(t, toks, 9)

	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
		assert.Equal(t, i, tok.Index)
	}
	assert.Equal(t, []TokenKind{
		PositionalToken, PositionalToken, ShortCluster, LongOption, LongOption,
		LongOption, Terminator, PositionalToken, PositionalToken,
	}, kinds)

	assert.Equal(t, "abc", toks[2].Name)
	assert.Equal(t, "name", toks[3].Name)
	assert.False(t, toks[3].HasValue)

	assert.Equal(t, "name", toks[4].Name)
	assert.Equal(t, "v", toks[4].Value)
	assert.True(t, toks[4].HasValue)

	assert.Equal(t, "x", toks[5].Name)
	assert.Equal(t, "", toks[5].Value)
	assert.True(t, toks[5].HasValue)

	assert.Equal(t, "--after", toks[7].Raw)
}

func TestTokenizer_SecondTerminatorIsPositional(t *testing.T) {
	toks := collect("--", "--")
	require.Len(t, toks, 2)
	assert.Equal(t, Terminator, toks[0].Kind)
	assert.Equal(t, PositionalToken, toks[1].Kind)
	assert.Equal(t, "--", toks[1].Raw)
}

func TestTokenizer_ValueIsVerbatim(t *testing.T) {
	tz := NewTokenizer([]string{"-x", "--", "-y"})
	tok, ok := tz.Next()
	require.True(t, ok)
	assert.Equal(t, ShortCluster, tok.Kind)

	v, ok := tz.Value()
	require.True(t, ok)
	assert.Equal(t, "--", v)

	// The consumed "--" was a value, so no terminator has been seen.
	tok, ok = tz.Next()
	require.True(t, ok)
	assert.Equal(t, ShortCluster, tok.Kind)

	_, ok = tz.Value()
	assert.False(t, ok)
}

func TestTokenizer_CopyIsIndependent(t *testing.T) {
	a := NewTokenizer([]string{"one", "two"})
	_, _ = a.Next()
	b := a
	_, _ = b.Next()

	tok, ok := a.Next()
	require.True(t, ok)
	assert.Equal(t, "two", tok.Raw)
}
