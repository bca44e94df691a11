package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/biojet1/ocli/core"
)

var (
	heading = color.New(color.Bold, color.Underline)
	strong  = color.New(color.Bold)
)

// BuildUsage renders the usage text of a resolved spec list.
//
// The output has a usage line followed by an "Arguments:" section for
// positionals and an "Options:" section for named options and flags. Both
// sections are omitted when empty. Specs are listed in registration order.
func BuildUsage(prog string, reg *core.Registry) string {
	var builder strings.Builder
	builder.WriteString(heading.Sprint("Usage:") + " ")
	builder.WriteString(strong.Sprint(prog))

	specs := reg.Specs()
	hasOptions := false
	for _, s := range specs {
		if s.Kind != core.Positional {
			hasOptions = true
			break
		}
	}
	if hasOptions {
		builder.WriteString(" [OPTIONS]")
	}
	positionals := reg.Positionals()
	for _, s := range positionals {
		builder.WriteString(" " + positionalUsage(s))
	}
	builder.WriteString("\n")

	if len(positionals) > 0 {
		builder.WriteString("\n" + heading.Sprint("Arguments:") + "\n")
		builder.WriteString(argsHelp(positionals))
	}
	if hasOptions {
		builder.WriteString("\n" + heading.Sprint("Options:") + "\n")
		builder.WriteString(optionsHelp(specs))
	}
	return builder.String()
}

// positionalUsage is the usage-line form of a positional.
func positionalUsage(s *core.Spec) string {
	name := s.DisplayName()
	switch {
	case s.Multi == core.OneOrMore:
		return name + "..."
	case s.Greedy() && s.Multi == core.Required:
		return name + "..."
	case s.Greedy():
		return "[" + name + "...]"
	case s.Multi == core.Required:
		return name
	}
	return "[" + name + "]"
}

// argsHelp generates help text for the positionals.
func argsHelp(specs []*core.Spec) string {
	var lines [][2]string
	for _, s := range specs {
		lines = append(lines, [2]string{"  " + positionalUsage(s), description(s)})
	}
	return align(lines)
}

// optionsHelp generates help text for named options and flags.
func optionsHelp(specs []*core.Spec) string {
	var lines [][2]string
	for _, s := range specs {
		if s.Kind == core.Positional {
			continue
		}
		var forms []string
		if s.Short != "" {
			forms = append(forms, "-"+s.Short)
		}
		if s.Name != "" {
			forms = append(forms, "--"+s.Name)
		}
		flag := "  " + strings.Join(forms, ", ")
		if s.Kind == core.Named {
			flag += " " + s.DisplayName()
		}
		lines = append(lines, [2]string{flag, description(s)})
	}
	return align(lines)
}

func description(s *core.Spec) string {
	desc := s.Help
	if len(s.Choices) > 0 {
		desc = strings.TrimSpace(desc + fmt.Sprintf(" (choices: %s)", strings.Join(s.Choices, ", ")))
	}
	if s.HasDefault && s.Default != nil {
		desc = strings.TrimSpace(desc + fmt.Sprintf(" (default: %v)", s.Default))
	}
	return desc
}

// align pads the first column so descriptions line up.
func align(lines [][2]string) string {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l[0]))
	}
	var builder strings.Builder
	for _, l := range lines {
		if l[1] == "" {
			builder.WriteString(l[0] + "\n")
			continue
		}
		padding := strings.Repeat(" ", maxLen-len(l[0]))
		builder.WriteString(fmt.Sprintf("%s%s  %s\n", l[0], padding, l[1]))
	}
	return builder.String()
}
