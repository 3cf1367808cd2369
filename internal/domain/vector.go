package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	VectorBegin     = `\begin{pmatrix}`
	VectorEnd       = `\end{pmatrix}`
	VectorSeparator = `\\`
)

var reDecimal = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// VectorLiteral is an ordered tuple of components parsed from a column vector.
type VectorLiteral []float64

// IsZero reports whether every component is exactly zero.
func (v VectorLiteral) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// Origin returns a zero vector with the same dimension as v.
func (v VectorLiteral) Origin() VectorLiteral {
	return make(VectorLiteral, len(v))
}

// X and Y return the first two components (0 when absent).
func (v VectorLiteral) X() float64 { return v.at(0) }
func (v VectorLiteral) Y() float64 { return v.at(1) }

func (v VectorLiteral) at(i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// ParseVector extracts the column vector embedded in expr.
//
// Everything after the begin marker is taken; the end marker and anything
// following it are dropped, all whitespace is removed and the remainder is
// split on the row separator. Empty segments are skipped, any other segment
// must be a decimal number.
func ParseVector(expr string) (VectorLiteral, error) {
	_, rest, ok := strings.Cut(expr, VectorBegin)
	if !ok {
		return nil, &OpError{
			Op:   "vector.parse",
			Kind: KindMalformedVector,
			Err:  fmt.Errorf("missing %s: %w", VectorBegin, ErrMalformedVector),
		}
	}
	if i := strings.Index(rest, VectorEnd); i >= 0 {
		rest = rest[:i]
	}
	rest = stripSpace(rest)

	out := VectorLiteral{}
	for _, seg := range strings.Split(rest, VectorSeparator) {
		if seg == "" {
			continue
		}
		if !reDecimal.MatchString(seg) {
			return nil, &OpError{
				Op:   "vector.parse",
				Kind: KindInvalidNumber,
				Err:  &InvalidNumberError{Text: seg},
			}
		}
		f, err := strconv.ParseFloat(seg, 64)
		if err != nil {
			return nil, &OpError{
				Op:   "vector.parse",
				Kind: KindInvalidNumber,
				Err:  &InvalidNumberError{Text: seg},
			}
		}
		out = append(out, f)
	}

	if len(out) == 0 {
		return nil, &OpError{
			Op:   "vector.parse",
			Kind: KindMalformedVector,
			Err:  fmt.Errorf("no components: %w", ErrMalformedVector),
		}
	}
	return out, nil
}

// Resultant is the difference of two vectors, anchored at the first one.
type Resultant struct {
	Vector VectorLiteral
	Offset VectorLiteral
}

// AddVectors computes b - a and anchors it at a.
func AddVectors(a, b VectorLiteral) (Resultant, error) {
	if len(a) != len(b) {
		return Resultant{}, &OpError{
			Op:   "vector.add",
			Kind: KindMalformedVector,
			Err:  fmt.Errorf("%d != %d: %w", len(a), len(b), ErrDimensionMismatch),
		}
	}

	res := make(VectorLiteral, len(a))
	for i := range a {
		res[i] = b[i] - a[i]
	}
	if res.IsZero() {
		return Resultant{}, &OpError{
			Op:   "vector.add",
			Kind: KindDegenerateVectors,
			Err:  fmt.Errorf("vectors are identical: %w", ErrDegenerateVectors),
		}
	}

	offset := make(VectorLiteral, len(a))
	copy(offset, a)
	return Resultant{Vector: res, Offset: offset}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
