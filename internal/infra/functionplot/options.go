// Package functionplot converts a render state into the options object
// accepted by the function-plot JavaScript library.
package functionplot

import (
	"context"
	"encoding/json"
	"io"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/evaluator"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

const Target = "#graph"

type Axis struct {
	Label string `json:"label,omitempty"`
}

type Datum struct {
	Fn        string    `json:"fn,omitempty"`
	Vector    []float64 `json:"vector,omitempty"`
	Offset    []float64 `json:"offset,omitempty"`
	FnType    string    `json:"fnType,omitempty"`
	GraphType string    `json:"graphType,omitempty"`
	Color     string    `json:"color"`
}

type Options struct {
	Target      string  `json:"target"`
	Title       string  `json:"title,omitempty"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Grid        bool    `json:"grid"`
	DisableZoom bool    `json:"disableZoom"`
	XAxis       Axis    `json:"xAxis"`
	YAxis       Axis    `json:"yAxis"`
	Data        []Datum `json:"data"`
}

// FromState builds function-plot options. Scalar bodies are translated
// from LaTeX into plain infix and must compile; the payload never carries
// a function the plotter would reject.
func FromState(st domain.RenderState) (Options, error) {
	w, h, err := st.Settings.Dimensions()
	if err != nil {
		return Options{}, err
	}

	out := Options{
		Target:      Target,
		Title:       st.Settings.Title,
		Width:       w,
		Height:      h,
		Grid:        st.Settings.Grid,
		DisableZoom: st.Settings.DisableZoom,
		XAxis:       Axis{Label: st.Settings.XLabel},
		YAxis:       Axis{Label: st.Settings.YLabel},
		Data:        []Datum{},
	}

	for _, fn := range st.Functions {
		f, err := evaluator.Compile(fn.Expr)
		if err != nil {
			return Options{}, err
		}
		out.Data = append(out.Data, Datum{Fn: f.Source(), Color: fn.Color})
	}
	for _, v := range st.Vectors {
		out.Data = append(out.Data, Datum{
			Vector:    []float64{v.Vector.X(), v.Vector.Y()},
			Offset:    []float64{v.Offset.X(), v.Offset.Y()},
			FnType:    "vector",
			GraphType: "polyline",
			Color:     v.Color,
		})
	}
	return out, nil
}

// Writer is a panel that prints function-plot options as JSON.
type Writer struct {
	W io.Writer
}

var _ ports.Panel = Writer{}

func (w Writer) Show(ctx context.Context, st domain.RenderState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts, err := FromState(st)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(opts); err != nil {
		return &domain.OpError{Op: "functionplot.encode", Kind: domain.KindExecution, Err: err}
	}
	return nil
}
