package core

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	clierr "github.com/biojet1/ocli/errors"
)

func registryError(t *testing.T, o *Opt) clierr.ParseError {
	t.Helper()
	_, err := NewRegistry(o.Specs())
	require.Error(t, err)
	var pe clierr.ParseError
	require.True(t, stderrs.As(err, &pe), "not a ParseError: %v", err)
	assert.Equal(t, clierr.ConfigurationError, pe.Kind)
	return pe
}

func TestRegistry_TwoGreedyPositionals(t *testing.T) {
	pe := registryError(t, (&Opt{}).Arg("", Append("a")).Arg("b", Multi(OneOrMore)))
	assert.Contains(t, pe.Error(), "already greedy")
}

func TestRegistry_AppendAndOverwriteSameDest(t *testing.T) {
	pe := registryError(t, (&Opt{}).Param("one", Dest("x")).Param("two", Append("x")))
	assert.Contains(t, pe.Error(), `dest "x" is both appended and overwritten`)
}

func TestRegistry_CallSpecsDoNotConflict(t *testing.T) {
	_, err := NewRegistry((&Opt{}).Param("one", Dest("x")).Param("two", Dest("x"), Append(""), Call("h")).Specs())
	assert.NoError(t, err)
}

func TestRegistry_DuplicateOptionString(t *testing.T) {
	pe := registryError(t, (&Opt{}).Flag("verbose", Short("v")).Flag("version", Short("v")))
	assert.Contains(t, pe.Error(), "-v declared by both --verbose and --version")
}

func TestRegistry_PositionalWithoutDestination(t *testing.T) {
	pe := registryError(t, (&Opt{}).Arg(""))
	assert.Contains(t, pe.Error(), "neither dest nor handler")
}

func TestRegistry_ChoicesMustConvert(t *testing.T) {
	pe := registryError(t, (&Opt{}).Param("n", Type(Int64), Choices("1", "x")))
	assert.Contains(t, pe.Error(), `choice "x" does not convert`)
}

func TestRegistry_InvalidOptionShapes(t *testing.T) {
	registryError(t, (&Opt{}).Param("", Dest("x")))
	registryError(t, (&Opt{}).Param("many", Multi(ZeroOrMore)))
	registryError(t, (&Opt{}).Flag("--name"))
}

func TestRegistry_ReportsEveryDefect(t *testing.T) {
	pe := registryError(t, (&Opt{}).
		Arg("").
		Flag("a").Flag("a").
		Param("p", Multi(OneOrMore)))

	var merr *multierror.Error
	require.True(t, stderrs.As(pe.Err, &merr))
	assert.Len(t, merr.Errors, 3)
}

func TestRegistry_ReserveAndLookup(t *testing.T) {
	reg, err := NewRegistry((&Opt{}).
		Arg("src", Multi(OneOrMore), Append("")).
		Arg("mid", Require()).
		Arg("opt").
		Arg("dst", Require()).
		Param("name", Short("n")).
		Specs())
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1, 1, 0}, reg.reserve)
	assert.Len(t, reg.Positionals(), 4)
	assert.Len(t, reg.Specs(), 5)

	long, ok := reg.Lookup("--name")
	require.True(t, ok)
	short, ok := reg.Lookup("-n")
	require.True(t, ok)
	assert.Same(t, long, short)

	_, ok = reg.Lookup("name")
	assert.False(t, ok)
}

type cachedCmd struct {
	Base
}

var cachedBuilds int

func (c *cachedCmd) Options(o *Opt) *Opt {
	cachedBuilds++
	return c.Base.Options(o.Flag("x"))
}

func TestResolve_CachedPerType(t *testing.T) {
	first, err := Resolve(&cachedCmd{})
	require.NoError(t, err)
	second, err := Resolve(&cachedCmd{})
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, cachedBuilds)
}

type nilOptsCmd struct {
	Base
}

func (c *nilOptsCmd) Options(o *Opt) *Opt { return nil }

func TestResolve_NilOpt(t *testing.T) {
	_, err := Resolve(&nilOptsCmd{})
	assert.ErrorIs(t, err, clierr.ErrConfiguration)
}

type sharedCmd struct {
	Base
	N    int64    `ocli:"n"`
	Mode string   `ocli:"mode"`
	Rest []string `ocli:"rest"`
}

func (c *sharedCmd) Options(o *Opt) *Opt {
	return c.Base.Options(o.
		Param("n", Type(Int64)).
		Param("mode", Choices("a", "b"), Default("a")).
		Arg("", Append("rest")))
}

func TestResolve_ConcurrentParses(t *testing.T) {
	const workers = 32
	cmds := make([]*sharedCmd, workers)
	regs := make([]*Registry, workers)

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			args := []string{fmt.Sprintf("first%d", i), "-n", fmt.Sprint(i), fmt.Sprintf("second%d", i)}
			if i%2 == 1 {
				args = append(args, "--mode=b")
			}
			cmd, err := Main(&sharedCmd{}, args)
			if err != nil {
				return err
			}
			reg, err := Resolve(cmd)
			if err != nil {
				return err
			}
			cmds[i], regs[i] = cmd, reg
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, cmd := range cmds {
		assert.Equal(t, int64(i), cmd.N)
		assert.Equal(t, []string{fmt.Sprintf("first%d", i), fmt.Sprintf("second%d", i)}, cmd.Rest)
		if i%2 == 1 {
			assert.Equal(t, "b", cmd.Mode)
		} else {
			assert.Equal(t, "a", cmd.Mode)
			assert.Equal(t, FromDefault, cmd.Namespace().Get("mode").Source())
		}
		assert.Same(t, regs[0], regs[i])
	}
}
