package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/biojet1/ocli"
	"github.com/biojet1/ocli/errors"
)

// CLIArgs is a small copy tool showing the main features: a greedy
// positional ahead of a required one, typed options, a shared dest and
// handler-routed flags.
type CLIArgs struct {
	ocli.Base
	ocli.HelpFlag
	ocli.VersionFlag

	Sources []string `ocli:"src"`
	Target  string   `ocli:"dst"`
	Jobs    int      `ocli:"jobs"`
	Mode    string   `ocli:"mode"`
	Verbose int
}

func (c *CLIArgs) Options(o *ocli.Opt) *ocli.Opt {
	return c.Base.Options(c.VersionFlag.Options(c.HelpFlag.Options(o.
		Arg("src", ocli.Multi(ocli.OneOrMore), ocli.Append(""), ocli.Help("Files to copy")).
		Arg("dst", ocli.Require(), ocli.Help("Destination directory")).
		Param("jobs", ocli.Short("j"), ocli.Type(ocli.Int), ocli.Default(4), ocli.Help("Parallel copies")).
		Param("mode", ocli.Choices("copy", "link", "move"), ocli.Default("copy"), ocli.Help("Transfer mode")).
		Flag("link", ocli.Short("l"), ocli.Const("link"), ocli.Dest("mode"), ocli.Help("Same as --mode=link")).
		Flag("verbose", ocli.Short("v"), ocli.Call("verbose"), ocli.Help("Increase verbosity")))))
}

func (c *CLIArgs) Handlers(h *ocli.Handlers) {
	h.Handle("verbose", func(ocli.Invocation) error {
		c.Verbose++
		return nil
	})
	c.HelpFlag.Handlers(h)
	c.VersionFlag.Handlers(h)
	c.Base.Handlers(h)
}

func (c *CLIArgs) Start() error {
	fmt.Printf("%s %s -> %s (jobs=%d, verbose=%d)\n",
		c.Mode, strings.Join(c.Sources, ", "), c.Target, c.Jobs, c.Verbose)
	return nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "app",
		Level:  hclog.LevelFromString(os.Getenv("OCLI_LOG_LEVEL")),
		Output: os.Stderr,
	})

	args := &CLIArgs{
		HelpFlag:    ocli.HelpFlag{Prog: "app"},
		VersionFlag: ocli.VersionFlag{Prog: "app", Version: "0.1.0"},
	}
	if _, err := ocli.Run(args, ocli.WithLogger(logger)); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrHelp), stderrors.Is(err, errors.ErrVersion):
		return 0
	case errors.IsConversion(err):
		fmt.Fprint(os.Stderr, ocli.FormatError("app", err))
		return 2
	default:
		fmt.Fprint(os.Stderr, ocli.FormatError("app", err))
		return 1
	}
}
