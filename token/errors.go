package token

import "fmt"

// ErrKind classifies a CompileError for programmatic checks.
// The message carries the human-readable detail.
type ErrKind int

const (
	SyntaxError ErrKind = iota
	// UnsupportedConstruct marks an AST node kind that has no lowering rule.
	UnsupportedConstruct
	// InvalidCallTarget marks a call whose callee is not a plain identifier.
	InvalidCallTarget
	// SignatureMismatch marks a call to an already-declared external function
	// with a different argument type pattern.
	SignatureMismatch
)

var errKinds = [...]string{
	SyntaxError:          "SyntaxError",
	UnsupportedConstruct: "UnsupportedConstruct",
	InvalidCallTarget:    "InvalidCallTarget",
	SignatureMismatch:    "SignatureMismatch",
}

func (k ErrKind) String() string {
	if 0 <= int(k) && int(k) < len(errKinds) {
		return errKinds[k]
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

type CompileError struct {
	Token Token
	Kind  ErrKind
	Msg   string
}

func (ce *CompileError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", ce.Token.FileName, ce.Token.Line, ce.Token.Column, ce.Kind, ce.Msg)
}
