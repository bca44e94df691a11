package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/biojet1/ocli/core"
	"github.com/biojet1/ocli/errors"
)

// Handler ids used by the help and version flags. A command registering
// its own handler under one of these ids overrides the default.
const (
	HelpID    core.HandlerID = "help"
	VersionID core.HandlerID = "version"
)

// Help adds -h/--help to a command. Embed it next to core.Base and chain
// both Options and Handlers through it:
//
//	func (a *App) Options(o *ocli.Opt) *ocli.Opt {
//		return a.Base.Options(a.Help.Options(o.Param("name")))
//	}
//
//	func (a *App) Handlers(h *ocli.Handlers) {
//		a.Help.Handlers(h)
//		a.Base.Handlers(h)
//	}
//
// Prog defaults to the base name of os.Args[0], Out to os.Stdout.
type Help struct {
	Prog string
	Out  io.Writer
}

// Options declares the help flag.
func (hp Help) Options(o *core.Opt) *core.Opt {
	return o.Flag("help", core.Short("h"), core.Call(HelpID), core.Help("show this help message and exit"))
}

// Handlers registers the usage printer under HelpID.
func (hp Help) Handlers(h *core.Handlers) {
	h.Handle(HelpID, func(inv core.Invocation) error {
		fmt.Fprint(output(hp.Out), BuildUsage(progName(hp.Prog), inv.Registry))
		return errors.ErrHelp
	})
}

// Version adds --version to a command. It is chained like Help.
type Version struct {
	Prog    string
	Version string
	Out     io.Writer
}

// Options declares the version flag.
func (v Version) Options(o *core.Opt) *core.Opt {
	return o.Flag("version", core.Call(VersionID), core.Help("show version information and exit"))
}

// Handlers registers the version printer under VersionID.
func (v Version) Handlers(h *core.Handlers) {
	h.Handle(VersionID, func(core.Invocation) error {
		fmt.Fprintln(output(v.Out), BuildVersion(progName(v.Prog), v.Version))
		return errors.ErrVersion
	})
}

func progName(prog string) string {
	if prog != "" {
		return prog
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "prog"
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
