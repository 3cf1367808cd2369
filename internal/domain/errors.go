package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidConfig       = errors.New("invalid config")
	ErrMalformedVector     = errors.New("malformed vector literal")
	ErrInvalidNumber       = errors.New("invalid numeric literal")
	ErrDegenerateVectors   = errors.New("degenerate vector pair")
	ErrInvalidSelection    = errors.New("invalid selection syntax")
	ErrExpressionOutOfList = errors.New("expression index out of range")

	// ErrDimensionMismatch is a malformed vector pair: errors.Is matches
	// both it and ErrMalformedVector.
	ErrDimensionMismatch = fmt.Errorf("dimension mismatch: %w", ErrMalformedVector)
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidConfig     ErrorKind = "invalid_config"
	KindExecution         ErrorKind = "execution"
	KindMalformedVector   ErrorKind = "malformed_vector_literal"
	KindInvalidNumber     ErrorKind = "invalid_numeric_literal"
	KindDegenerateVectors ErrorKind = "degenerate_vector_pair"
	KindInvalidSelection  ErrorKind = "invalid_selection_syntax"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidNumberError reports a vector component that is not a decimal number.
// Text is the raw segment as it appeared after whitespace removal.
type InvalidNumberError struct {
	Text string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidNumber, e.Text)
}

func (e *InvalidNumberError) Unwrap() error { return ErrInvalidNumber }

// VectorIndexError names a vector position (1-based) that the selection
// does not have.
type VectorIndexError struct {
	Index int
	Count int
}

func (e *VectorIndexError) Error() string {
	return fmt.Sprintf("no vector %d of %d: %v", e.Index, e.Count, ErrExpressionOutOfList)
}

func (e *VectorIndexError) Unwrap() error { return ErrExpressionOutOfList }

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or KindExecution.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindExecution
}
