package functionplot

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

func TestFromStateScalar(t *testing.T) {
	list, kind := domain.ParseSelection(`f(x) = x^2\newlineg(x) = 2x+1`)
	st, err := domain.Derive(list, kind, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	opts, err := FromState(st)
	if err != nil {
		t.Fatalf("FromState error: %v", err)
	}
	if opts.Width != 800 || opts.Height != 560 || !opts.Grid {
		t.Fatalf("unexpected layout %+v", opts)
	}
	if len(opts.Data) != 2 {
		t.Fatalf("expected 2 data entries, got %d", len(opts.Data))
	}
	if opts.Data[0].Fn != "x^2" || opts.Data[0].Color != "red" {
		t.Fatalf("unexpected first datum %+v", opts.Data[0])
	}
	if opts.Data[1].Fn != "2*x+1" || opts.Data[1].Color != "green" {
		t.Fatalf("unexpected second datum %+v", opts.Data[1])
	}
}

func TestWriterVectors(t *testing.T) {
	list, kind := domain.ParseSelection(`\vec{AB} = \begin{pmatrix} 1 \\ 2 \end{pmatrix}`)
	st, err := domain.Derive(list, kind, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	var buf bytes.Buffer
	if err := (Writer{W: &buf}).Show(context.Background(), st); err != nil {
		t.Fatalf("Show error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := got["data"].([]any)
	d := data[0].(map[string]any)
	if d["fnType"] != "vector" || d["graphType"] != "polyline" {
		t.Fatalf("unexpected vector datum %v", d)
	}
	vec := d["vector"].([]any)
	if vec[0].(float64) != 1 || vec[1].(float64) != 2 {
		t.Fatalf("unexpected vector %v", vec)
	}
	if got["target"] != Target {
		t.Fatalf("unexpected target %v", got["target"])
	}
}

func TestFromStateTranslatesLogAndRejectsBadFunctions(t *testing.T) {
	list, kind := domain.ParseSelection(`y = \log{x}\newline y = 1e2 x`)
	st, err := domain.Derive(list, kind, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	opts, err := FromState(st)
	if err != nil {
		t.Fatalf("FromState error: %v", err)
	}
	if opts.Data[0].Fn != "log10(x)" || opts.Data[1].Fn != "1e2*x" {
		t.Fatalf("unexpected functions %q, %q", opts.Data[0].Fn, opts.Data[1].Fn)
	}

	list, kind = domain.ParseSelection(`y = x +`)
	st, err = domain.Derive(list, kind, domain.DefaultSettings())
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if _, err := FromState(st); !domain.IsKind(err, domain.KindInvalidSelection) {
		t.Fatalf("expected invalid selection, got %v", err)
	}
}
