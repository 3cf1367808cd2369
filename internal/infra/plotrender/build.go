package plotrender

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/evaluator"
)

const (
	samples    = 400
	yLimit     = 1e3
	headLength = 0.12
	headAngle  = math.Pi / 7
)

// Build lays out a plot for st. Scalar functions are sampled on
// [xMin, xMax]; vectors are drawn as arrows and the axes fit them.
func Build(st domain.RenderState, xMin, xMax float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = st.Settings.Title
	p.X.Label.Text = st.Settings.XLabel
	p.Y.Label.Text = st.Settings.YLabel
	p.Legend.Top = true

	if st.Settings.Grid {
		p.Add(plotter.NewGrid())
	}

	if st.IsEmpty() {
		if p.Title.Text == "" {
			p.Title.Text = domain.EmptyPlaceholder
		}
		p.X.Min, p.X.Max = xMin, xMax
		p.Y.Min, p.Y.Max = xMin, xMax
		return p, nil
	}

	b := newBounds()
	for _, fn := range st.Functions {
		f, err := evaluator.Compile(fn.Expr)
		if err != nil {
			return nil, err
		}

		line := plotter.NewFunction(f.MustEval)
		line.Samples = samples
		line.XMin, line.XMax = xMin, xMax
		line.Color = colorOf(fn.Color)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fn.Expr, line)

		b.addX(xMin)
		b.addX(xMax)
		for i := 0; i <= samples; i++ {
			x := xMin + (xMax-xMin)*float64(i)/samples
			if y := f.MustEval(x); !math.IsNaN(y) && !math.IsInf(y, 0) && math.Abs(y) < yLimit {
				b.addY(y)
			}
		}
	}

	for _, v := range st.Vectors {
		lines, err := arrow(v)
		if err != nil {
			return nil, err
		}
		for _, l := range lines {
			p.Add(l)
		}
		p.Legend.Add(vectorLegend(v), lines[0])

		b.add(v.Offset.X(), v.Offset.Y())
		tip := v.Tip()
		b.add(tip.X(), tip.Y())
	}
	if len(st.Vectors) > 0 {
		b.add(0, 0)
	}

	b.apply(p)
	return p, nil
}

// arrow returns the shaft followed by the two head strokes.
func arrow(v domain.PlacedVector) ([]*plotter.Line, error) {
	x0, y0 := v.Offset.X(), v.Offset.Y()
	tip := v.Tip()
	x1, y1 := tip.X(), tip.Y()

	length := math.Hypot(x1-x0, y1-y0)
	theta := math.Atan2(y1-y0, x1-x0)
	head := length * headLength

	paths := []plotter.XYs{
		{{X: x0, Y: y0}, {X: x1, Y: y1}},
		{{X: x1, Y: y1}, {X: x1 - head*math.Cos(theta-headAngle), Y: y1 - head*math.Sin(theta-headAngle)}},
		{{X: x1, Y: y1}, {X: x1 - head*math.Cos(theta+headAngle), Y: y1 - head*math.Sin(theta+headAngle)}},
	}

	out := make([]*plotter.Line, 0, len(paths))
	for _, xys := range paths {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, &domain.OpError{Op: "plotrender.arrow", Kind: domain.KindExecution, Err: err}
		}
		l.Color = colorOf(v.Color)
		l.Width = vg.Points(2)
		if v.Resultant {
			l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		out = append(out, l)
	}
	return out, nil
}

func vectorLegend(v domain.PlacedVector) string {
	if v.Resultant {
		return v.Label + " (resultant)"
	}
	return v.Label
}

type bounds struct {
	xMin, xMax, yMin, yMax float64
}

func newBounds() *bounds {
	return &bounds{
		xMin: math.Inf(1), xMax: math.Inf(-1),
		yMin: math.Inf(1), yMax: math.Inf(-1),
	}
}

func (b *bounds) addX(x float64) {
	b.xMin = math.Min(b.xMin, x)
	b.xMax = math.Max(b.xMax, x)
}

func (b *bounds) addY(y float64) {
	b.yMin = math.Min(b.yMin, y)
	b.yMax = math.Max(b.yMax, y)
}

func (b *bounds) add(x, y float64) {
	b.addX(x)
	b.addY(y)
}

// apply pads the collected ranges by 10% and sets them on p.
// Missing or flat ranges fall back to [-1, 1] around their value.
func (b *bounds) apply(p *plot.Plot) {
	p.X.Min, p.X.Max = pad(b.xMin, b.xMax)
	p.Y.Min, p.Y.Max = pad(b.yMin, b.yMax)
}

func pad(lo, hi float64) (float64, float64) {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return -1, 1
	}
	if hi-lo == 0 {
		return lo - 1, hi + 1
	}
	m := (hi - lo) * 0.1
	return lo - m, hi + m
}
