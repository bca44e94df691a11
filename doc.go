// Package ocli is a declarative command-line argument parser.
//
// A command type embeds Base and describes its arguments in an Options
// method that adds its own specs and then chains into its base's Options.
// Main tokenizes the arguments, matches them against the resulting spec
// list, validates required arguments, writes the bound values onto the
// command and finally calls its Start method.
//
// Long options (--name, --name=value, --name value), short clusters (-abc,
// -xVALUE), the -- terminator, positionals with "+" and "*" multiplicity,
// append destinations and several specs sharing one destination are
// supported. Failures are typed: see the errors package.
package ocli
