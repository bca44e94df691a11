package display

import (
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/biojet1/ocli/errors"
)

var errorPrefix = color.New(color.FgRed, color.Bold)

// FormatError renders a parse failure for the terminal. Help and version
// requests render as the empty string.
func FormatError(prog string, err error) string {
	if err == nil || stderrs.Is(err, errors.ErrHelp) || stderrs.Is(err, errors.ErrVersion) {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(errorPrefix.Sprint("error:") + " " + err.Error() + "\n")

	if k, ok := errors.KindOf(err); ok && k != errors.ConfigurationError {
		builder.WriteString(fmt.Sprintf("Try '%s --help' for more information.\n", progName(prog)))
	}
	return builder.String()
}
