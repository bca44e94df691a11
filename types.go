package ocli

import (
	"github.com/biojet1/ocli/core"
	"github.com/biojet1/ocli/display"
)

// Base is embedded by every command. It ends the Options and Handlers
// chains and keeps the Namespace of the last successful parse.
//
// Usage:
//
//	type App struct {
//		ocli.Base
//	}
type Base = core.Base

// Command is satisfied by any pointer to a struct embedding Base.
type Command = core.Command

// Starter is the optional entry point called after a successful parse.
type Starter = core.Starter

// Opt accumulates specs in declaration order.
type Opt = core.Opt

// Spec is one argument declaration.
type Spec = core.Spec

// SpecOption configures a Spec as it is declared.
type SpecOption = core.SpecOption

// Registry is the validated, cached spec list of a command type.
type Registry = core.Registry

// Handlers is the per-instance handler table for Call specs.
type Handlers = core.Handlers

// Handler receives each value matched by a Call spec.
type Handler = core.Handler

// HandlerID names a handler.
type HandlerID = core.HandlerID

// Invocation is passed to a Handler.
type Invocation = core.Invocation

// Namespace is the set of dests bound by a parse.
type Namespace = core.Namespace

// Value is one dest of a Namespace, distinguishing unset, default and bound.
type Value = core.Value

// Converter turns a token into a typed value.
type Converter = core.Converter

// MainOption configures a Main call.
type MainOption = core.MainOption

// Multiplicity is the "required" attribute of a spec.
type Multiplicity = core.Multiplicity

// Multiplicities.
const (
	Optional   = core.Optional
	Required   = core.Required
	OneOrMore  = core.OneOrMore
	ZeroOrMore = core.ZeroOrMore
)

// Value sources.
const (
	Unset       = core.Unset
	FromDefault = core.FromDefault
	FromToken   = core.FromToken
)

// Spec options.
var (
	Short   = core.Short
	Dest    = core.Dest
	Type    = core.Type
	Default = core.Default
	Multi   = core.Multi
	Require = core.Require
	Append  = core.Append
	Choices = core.Choices
	Const   = core.Const
	Call    = core.Call
	Help    = core.Help
	Metavar = core.Metavar
)

// Converters.
var (
	String = core.String
	Int    = core.Int
	Int64  = core.Int64
	Float  = core.Float
	Bool   = core.Bool
	Truthy = core.Truthy
	Fields = core.Fields
)

// HelpFlag is a mixin adding -h/--help; see display.Help.
type HelpFlag = display.Help

// VersionFlag is a mixin adding --version; see display.Version.
type VersionFlag = display.Version
