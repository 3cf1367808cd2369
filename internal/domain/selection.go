package domain

import "strings"

const (
	// MathMarker delimits inline math in notes and is often copied by accident.
	MathMarker = "$"

	// LineBreakToken separates independent expressions inside one selection.
	LineBreakToken = `\newline`

	// VectorMarker identifies a selection that contains vector notation.
	VectorMarker = `\vec`
)

// InputKind classifies an ExpressionList.
type InputKind string

const (
	KindEmpty  InputKind = "empty"
	KindScalar InputKind = "scalar"
	KindVector InputKind = "vector"
)

// kindNames are the spellings ParseInputKind accepts, in help order.
var kindNames = []struct {
	name string
	kind InputKind
}{
	{"scalar", KindScalar},
	{"graph", KindScalar},
	{"function", KindScalar},
	{"vector", KindVector},
	{"empty", KindEmpty},
}

// InputKindNames lists every accepted spelling, e.g. for flag help.
func InputKindNames() []string {
	out := make([]string, len(kindNames))
	for i, k := range kindNames {
		out[i] = k.name
	}
	return out
}

// ParseInputKind maps user input (e.g. a --kind flag) to an InputKind.
func ParseInputKind(s string) (InputKind, bool) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, k := range kindNames {
		if k.name == in {
			return k.kind, true
		}
	}
	return "", false
}

// Expression is one function or vector definition taken from a selection.
// It keeps the surrounding whitespace; call Body before using it.
type Expression string

// Body returns the expression trimmed for use as a function body.
func (e Expression) Body() string {
	return strings.TrimSpace(string(e))
}

// IsBlank reports whether the expression has no content.
func (e Expression) IsBlank() bool {
	return e.Body() == ""
}

// ExpressionList is an ordered list of expressions. Order drives colors.
type ExpressionList []Expression

// Strings returns the raw expression strings.
func (l ExpressionList) Strings() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = string(e)
	}
	return out
}

// Normalize removes every math-mode marker from a raw selection.
func Normalize(raw string) string {
	return strings.ReplaceAll(raw, MathMarker, "")
}

// Split breaks a normalized selection on LineBreakToken.
// Substrings are not trimmed.
func Split(normalized string) ExpressionList {
	parts := strings.Split(normalized, LineBreakToken)
	out := make(ExpressionList, len(parts))
	for i, p := range parts {
		out[i] = Expression(p)
	}
	return out
}

// Classify assigns an InputKind to a list.
//
// The vector marker is looked up across the whole list: one vector expression
// makes the entire list a vector list, and scalar expressions mixed into it
// are then treated as (failing) vector literals.
func Classify(list ExpressionList, raw string) InputKind {
	if strings.TrimSpace(Normalize(raw)) == "" {
		return KindEmpty
	}
	for _, e := range list {
		if strings.Contains(string(e), VectorMarker) {
			return KindVector
		}
	}
	return KindScalar
}

// ParseSelection runs the normalizer, splitter and classifier in order.
func ParseSelection(raw string) (ExpressionList, InputKind) {
	list := Split(Normalize(raw))
	return list, Classify(list, raw)
}
