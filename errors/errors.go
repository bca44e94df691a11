package errors

import (
	stderrs "errors"
	"fmt"
	"strings"
)

// Kind classifies a parse failure.
type Kind int

const (
	// UnknownOption is an option token that no spec declares.
	UnknownOption Kind = iota + 1
	// MissingValue is a value-taking option at the end of the input.
	MissingValue
	// UnexpectedValue is a flag given an inline value (--flag=x).
	UnexpectedValue
	// MissingPositional is a "+" positional that could not match once.
	MissingPositional
	// UnexpectedPositional is a positional token with no spec left to take it.
	UnexpectedPositional
	// MissingRequired is a required spec whose dest was never bound.
	MissingRequired
	// ConversionError is a value rejected by the spec's converter.
	ConversionError
	// InvalidChoice is a value outside the spec's allowed choices.
	InvalidChoice
	// ConfigurationError is a defect in the spec chain itself.
	ConfigurationError
)

var kindNames = map[Kind]string{
	UnknownOption:        "unknown option",
	MissingValue:         "missing value",
	UnexpectedValue:      "unexpected value",
	MissingPositional:    "missing positional argument",
	UnexpectedPositional: "unexpected positional argument",
	MissingRequired:      "missing required argument",
	ConversionError:      "invalid value",
	InvalidChoice:        "invalid choice",
	ConfigurationError:   "invalid configuration",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is. A ParseError matches the sentinel of its Kind.
var (
	ErrUnknownOption        = stderrs.New(UnknownOption.String())
	ErrMissingValue         = stderrs.New(MissingValue.String())
	ErrUnexpectedValue      = stderrs.New(UnexpectedValue.String())
	ErrMissingPositional    = stderrs.New(MissingPositional.String())
	ErrUnexpectedPositional = stderrs.New(UnexpectedPositional.String())
	ErrMissingRequired      = stderrs.New(MissingRequired.String())
	ErrConversion           = stderrs.New(ConversionError.String())
	ErrInvalidChoice        = stderrs.New(InvalidChoice.String())
	ErrConfiguration        = stderrs.New(ConfigurationError.String())
)

// ErrHelp is returned by the help handler once usage has been written.
var ErrHelp = stderrs.New("help requested")

// ErrVersion is returned by the version handler once the version has been written.
var ErrVersion = stderrs.New("version requested")

func (k Kind) sentinel() error {
	switch k {
	case UnknownOption:
		return ErrUnknownOption
	case MissingValue:
		return ErrMissingValue
	case UnexpectedValue:
		return ErrUnexpectedValue
	case MissingPositional:
		return ErrMissingPositional
	case UnexpectedPositional:
		return ErrUnexpectedPositional
	case MissingRequired:
		return ErrMissingRequired
	case ConversionError:
		return ErrConversion
	case InvalidChoice:
		return ErrInvalidChoice
	case ConfigurationError:
		return ErrConfiguration
	}
	return nil
}

// ParseError is the single failure type produced by the parser.
// Token is the offending command-line token (empty for end-of-input checks),
// Spec the identity of the spec involved (e.g. "--float", "-x", "FILE").
// For UnknownOption, Spec is the option string that failed to resolve,
// which is a single code for a short cluster such as "-bq".
type ParseError struct {
	Kind       Kind
	Token      string
	Spec       string
	Suggestion string
	Choices    []string
	Err        error
}

func (e ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	switch {
	case e.Kind == UnknownOption && e.Spec != "" && e.Token != "" && e.Spec != e.Token:
		fmt.Fprintf(&b, ": %s in %q", e.Spec, e.Token)
	case e.Spec != "" && e.Token != "" && e.Spec != e.Token:
		fmt.Fprintf(&b, " %q for %s", e.Token, e.Spec)
	case e.Token != "":
		fmt.Fprintf(&b, ": %s", e.Token)
	case e.Spec != "":
		fmt.Fprintf(&b, ": %s", e.Spec)
	}
	if len(e.Choices) > 0 {
		fmt.Fprintf(&b, " (choose from %s)", strings.Join(e.Choices, ", "))
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is reports whether target is the sentinel for e's Kind.
func (e ParseError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Unwrap exposes the underlying converter or configuration failure.
func (e ParseError) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first ParseError in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe ParseError
	if stderrs.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// IsConversion reports whether err is a bad value rather than a bad shape.
func IsConversion(err error) bool {
	k, ok := KindOf(err)
	return ok && (k == ConversionError || k == InvalidChoice)
}

// Helper constructors
func NewUnknownOption(token, option, suggestion string) error {
	return ParseError{Kind: UnknownOption, Token: token, Spec: option, Suggestion: suggestion}
}
func NewMissingValue(token, spec string) error {
	return ParseError{Kind: MissingValue, Token: token, Spec: spec}
}
func NewUnexpectedValue(token, spec string) error {
	return ParseError{Kind: UnexpectedValue, Token: token, Spec: spec}
}
func NewMissingPositional(spec string) error {
	return ParseError{Kind: MissingPositional, Spec: spec}
}
func NewUnexpectedPositional(token string) error {
	return ParseError{Kind: UnexpectedPositional, Token: token}
}
func NewMissingRequired(spec string) error {
	return ParseError{Kind: MissingRequired, Spec: spec}
}
func NewConversion(token, spec string, err error) error {
	return ParseError{Kind: ConversionError, Token: token, Spec: spec, Err: err}
}
func NewInvalidChoice(token, spec string, choices []string) error {
	return ParseError{Kind: InvalidChoice, Token: token, Spec: spec, Choices: choices}
}
func NewConfiguration(spec string, err error) error {
	return ParseError{Kind: ConfigurationError, Spec: spec, Err: err}
}
