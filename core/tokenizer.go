package core

import "strings"

// TokenKind classifies a raw command-line token.
type TokenKind int

const (
	// PositionalToken is anything not shaped like an option, and every
	// token after the terminator.
	PositionalToken TokenKind = iota
	// LongOption is "--name" or "--name=value".
	LongOption
	// ShortCluster is "-abc": one or more single-character codes.
	ShortCluster
	// Terminator is the first "--".
	Terminator
)

// Token is one classified argument. Name is the option name without dashes
// (the cluster characters for a ShortCluster). Value is set only for a long
// option written with "=".
type Token struct {
	Kind     TokenKind
	Raw      string
	Index    int
	Name     string
	Value    string
	HasValue bool
}

// Tokenizer classifies tokens lazily, in one pass. It holds no references
// besides the argument slice, so copying it gives an independent cursor.
type Tokenizer struct {
	args       []string
	pos        int
	terminated bool
}

// NewTokenizer returns a tokenizer positioned before args[0].
func NewTokenizer(args []string) Tokenizer {
	return Tokenizer{args: args}
}

// Next classifies and consumes the next token.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.args) {
		return Token{}, false
	}
	raw := t.args[t.pos]
	tok := Token{Raw: raw, Index: t.pos}
	t.pos++

	switch {
	case t.terminated:
		tok.Kind = PositionalToken
	case raw == "--":
		t.terminated = true
		tok.Kind = Terminator
	case len(raw) > 2 && strings.HasPrefix(raw, "--"):
		tok.Kind = LongOption
		tok.Name, tok.Value, tok.HasValue = strings.Cut(raw[2:], "=")
	case len(raw) > 1 && raw[0] == '-':
		tok.Kind = ShortCluster
		tok.Name = raw[1:]
	default:
		tok.Kind = PositionalToken
	}
	return tok, true
}

// Value consumes the next token verbatim, without classifying it, as the
// value of the option just read.
func (t *Tokenizer) Value() (string, bool) {
	if t.pos >= len(t.args) {
		return "", false
	}
	v := t.args[t.pos]
	t.pos++
	return v, true
}
