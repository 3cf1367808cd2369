package domain

import (
	"fmt"
	"regexp"
)

// EmptyPlaceholder is shown by panels when there is nothing to plot.
const EmptyPlaceholder = "Use the command to generate a graph."

var reVectorName = regexp.MustCompile(`\\vec\{([^}]*)\}`)

// Function is a scalar expression ready for plotting.
type Function struct {
	Index int
	Expr  string
	Color string
}

// PlacedVector is a vector drawn from Offset to Offset+Vector.
type PlacedVector struct {
	Index     int // expression index; -1 for resultants
	Label     string
	Vector    VectorLiteral
	Offset    VectorLiteral
	Color     string
	Resultant bool
}

// Tip returns the end point of the arrow.
func (p PlacedVector) Tip() VectorLiteral {
	out := make(VectorLiteral, len(p.Vector))
	for i := range p.Vector {
		out[i] = p.Vector[i] + p.Offset.at(i)
	}
	return out
}

// RenderState is everything a panel needs for one render cycle.
// It is replaced wholesale on every command; nothing mutates it in place.
type RenderState struct {
	Expressions ExpressionList
	Kind        InputKind
	Colors      []string
	Functions   []Function
	Vectors     []PlacedVector
	Settings    Settings
}

// IsEmpty reports whether there is nothing to draw.
func (s RenderState) IsEmpty() bool {
	return s.Kind == KindEmpty || (len(s.Functions) == 0 && len(s.Vectors) == 0)
}

// Derive recomputes the render state for a list of expressions.
// Blank expressions keep their color slot but are not drawn.
func Derive(list ExpressionList, kind InputKind, settings Settings) (RenderState, error) {
	st := RenderState{
		Expressions: append(ExpressionList(nil), list...),
		Kind:        kind,
		Colors:      AssignColors(list),
		Settings:    settings,
	}

	switch kind {
	case KindEmpty:
		return st, nil

	case KindScalar:
		for i, e := range list {
			if e.IsBlank() {
				continue
			}
			st.Functions = append(st.Functions, Function{Index: i, Expr: e.Body(), Color: st.Colors[i]})
		}
		return st, nil

	case KindVector:
		for i, e := range list {
			if e.IsBlank() {
				continue
			}
			v, err := ParseVector(string(e))
			if err != nil {
				return RenderState{}, &OpError{
					Op:   "state.derive",
					Kind: KindOf(err),
					Err:  fmt.Errorf("expression %d: %w", i+1, err),
				}
			}
			st.Vectors = append(st.Vectors, PlacedVector{
				Index:  i,
				Label:  vectorLabel(e.Body(), i),
				Vector: v,
				Offset: v.Origin(),
				Color:  st.Colors[i],
			})
		}
		return st, nil

	default:
		return RenderState{}, &OpError{
			Op:   "state.derive",
			Kind: KindInvalidSelection,
			Err:  fmt.Errorf("unknown input kind %q: %w", kind, ErrInvalidSelection),
		}
	}
}

// WithResultant returns a copy of s with the resultant of vectors a and b
// (0-based positions in s.Vectors) appended.
func (s RenderState) WithResultant(a, b int) (RenderState, error) {
	for _, i := range []int{a, b} {
		if i < 0 || i >= len(s.Vectors) {
			return RenderState{}, &OpError{
				Op:   "state.resultant",
				Kind: KindInvalidSelection,
				Err:  &VectorIndexError{Index: i + 1, Count: len(s.Vectors)},
			}
		}
	}

	va, vb := s.Vectors[a], s.Vectors[b]
	res, err := AddVectors(va.Vector, vb.Vector)
	if err != nil {
		return RenderState{}, err
	}

	out := s
	out.Vectors = append(make([]PlacedVector, 0, len(s.Vectors)+1), s.Vectors...)
	out.Vectors = append(out.Vectors, PlacedVector{
		Index:     -1,
		Label:     va.Label + "→" + vb.Label,
		Vector:    res.Vector,
		Offset:    res.Offset,
		Color:     ColorFor(len(s.Expressions) + countResultants(s.Vectors)),
		Resultant: true,
	})
	return out, nil
}

func countResultants(vs []PlacedVector) int {
	n := 0
	for _, v := range vs {
		if v.Resultant {
			n++
		}
	}
	return n
}

func vectorLabel(body string, i int) string {
	if m := reVectorName.FindStringSubmatch(body); len(m) == 2 && m[1] != "" {
		return m[1]
	}
	return fmt.Sprintf("v%d", i+1)
}
