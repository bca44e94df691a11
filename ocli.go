package ocli

import (
	"github.com/biojet1/ocli/core"
	"github.com/biojet1/ocli/display"
)

// Main parses args (without the program name) into cmd and invokes its
// Start method, returning cmd.
//
// The spec list of cmd's type is built once, from its Options chain, and
// cached. Handlers for Call specs come from the Handlers chain, where the
// first registration of an id wins. Any failure is returned before Start
// runs and before anything is written onto cmd.
//
// Usage:
//
//	type App struct {
//		ocli.Base
//		Name  string `ocli:"name"`
//		Files []string `ocli:"files"`
//	}
//
//	func (a *App) Options(o *ocli.Opt) *ocli.Opt {
//		return a.Base.Options(o.
//			Param("name", ocli.Short("n")).
//			Arg("", ocli.Append("files")))
//	}
//
//	app, err := ocli.Main(&App{}, os.Args[1:])
func Main[C Command](cmd C, args []string, opts ...MainOption) (C, error) {
	return core.Main(cmd, args, opts...)
}

// Run is Main over os.Args[1:].
func Run[C Command](cmd C, opts ...MainOption) (C, error) {
	return core.Run(cmd, opts...)
}

// Get returns dest from n as a T. ok is false when the dest is unset or
// holds another type.
func Get[T any](n Namespace, dest string) (T, bool) {
	return core.Get[T](n, dest)
}

// Resolve returns the validated spec list of cmd's type.
var Resolve = core.Resolve

// WithLogger traces matching decisions to an hclog.Logger.
var WithLogger = core.WithLogger

// BuildUsage renders the usage text for a resolved spec list.
//
// Example:
//
//	reg, err := ocli.Resolve(&App{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(ocli.BuildUsage("app", reg))
var BuildUsage = display.BuildUsage

// BuildVersion returns "name vVERSION", inferring the version from build
// info when it is empty.
var BuildVersion = display.BuildVersion

// FormatError renders a parse failure for the terminal.
var FormatError = display.FormatError
