package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseVector(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want VectorLiteral
	}{
		{"named", `\vec{AB} = \begin{pmatrix} 1 \\ 2 \end{pmatrix}`, VectorLiteral{1, 2}},
		{"signed float", `\begin{pmatrix} -3.5 \\ 0 \end{pmatrix}`, VectorLiteral{-3.5, 0}},
		{"no spaces", `\begin{pmatrix}4\\+5\end{pmatrix}`, VectorLiteral{4, 5}},
		{"three components", `\begin{pmatrix} 1 \\ 2 \\ 3 \end{pmatrix}`, VectorLiteral{1, 2, 3}},
		{"trailing separator", `\begin{pmatrix} 1 \\ 2 \\ \end{pmatrix}`, VectorLiteral{1, 2}},
		{"missing end marker", `\begin{pmatrix} 7 \\ .5`, VectorLiteral{7, 0.5}},
		{"text after end", `\begin{pmatrix} 1 \\ 2 \end{pmatrix}, see above`, VectorLiteral{1, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseVector(c.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("ParseVector = %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseVectorMissingBegin(t *testing.T) {
	_, err := ParseVector(`\vec{AB} = (1, 2)`)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindMalformedVector) {
		t.Fatalf("expected KindMalformedVector, got %v", err)
	}
	if !errors.Is(err, ErrMalformedVector) {
		t.Fatalf("expected ErrMalformedVector in chain")
	}
}

func TestParseVectorEmptyBody(t *testing.T) {
	_, err := ParseVector(`\begin{pmatrix} \end{pmatrix}`)
	if !IsKind(err, KindMalformedVector) {
		t.Fatalf("expected KindMalformedVector, got %v", err)
	}
}

func TestParseVectorInvalidComponent(t *testing.T) {
	for _, in := range []string{
		`\begin{pmatrix} a \\ 2 \end{pmatrix}`,
		`\begin{pmatrix} 1 \\ NaN \end{pmatrix}`,
		`\begin{pmatrix} 0x10 \\ 2 \end{pmatrix}`,
	} {
		_, err := ParseVector(in)
		if !IsKind(err, KindInvalidNumber) {
			t.Fatalf("ParseVector(%q): expected KindInvalidNumber, got %v", in, err)
		}
	}

	_, err := ParseVector(`\begin{pmatrix} a \\ 2 \end{pmatrix}`)
	var ne *InvalidNumberError
	if !errors.As(err, &ne) {
		t.Fatalf("expected InvalidNumberError, got %v", err)
	}
	if ne.Text != "a" {
		t.Fatalf("expected offending text %q, got %q", "a", ne.Text)
	}
}

func TestAddVectors(t *testing.T) {
	res, err := AddVectors(VectorLiteral{0, 0}, VectorLiteral{3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Vector, VectorLiteral{3, 4}) {
		t.Fatalf("result = %v", res.Vector)
	}
	if !reflect.DeepEqual(res.Offset, VectorLiteral{0, 0}) {
		t.Fatalf("offset = %v", res.Offset)
	}

	res, err = AddVectors(VectorLiteral{1, 1}, VectorLiteral{-2, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Vector, VectorLiteral{-3, 4}) || !reflect.DeepEqual(res.Offset, VectorLiteral{1, 1}) {
		t.Fatalf("unexpected resultant %+v", res)
	}
}

func TestAddVectorsDegenerate(t *testing.T) {
	_, err := AddVectors(VectorLiteral{1, 2}, VectorLiteral{1, 2})
	if !IsKind(err, KindDegenerateVectors) {
		t.Fatalf("expected KindDegenerateVectors, got %v", err)
	}
	if !errors.Is(err, ErrDegenerateVectors) {
		t.Fatalf("expected ErrDegenerateVectors in chain")
	}
}

func TestAddVectorsDimensionMismatch(t *testing.T) {
	_, err := AddVectors(VectorLiteral{1, 2}, VectorLiteral{1, 2, 3})
	if !IsKind(err, KindMalformedVector) {
		t.Fatalf("expected KindMalformedVector, got %v", err)
	}
}

func TestAddVectorsDoesNotAliasInput(t *testing.T) {
	a := VectorLiteral{1, 2}
	res, err := AddVectors(a, VectorLiteral{2, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res.Offset[0] = 99
	if a[0] != 1 {
		t.Fatalf("expected input to remain unchanged")
	}
}
