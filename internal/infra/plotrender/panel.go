package plotrender

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gonum.org/v1/plot/vg"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

// Panel renders every state it is shown into a single image file.
// The format follows the file extension (svg, png, pdf, ...).
type Panel struct {
	path       string
	xMin, xMax float64

	mu   sync.Mutex
	last *domain.RenderState
}

type Option func(*Panel)

// WithXRange sets the interval scalar functions are sampled on.
func WithXRange(lo, hi float64) Option {
	return func(p *Panel) {
		if hi > lo {
			p.xMin, p.xMax = lo, hi
		}
	}
}

func New(path string, opts ...Option) *Panel {
	p := &Panel{
		path: filepath.Clean(path),
		xMin: -10,
		xMax: 10,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.Panel = (*Panel)(nil)

func (p *Panel) Path() string { return p.path }

// Show replaces the image with a rendering of st. If rendering fails the
// previous image and state are kept.
func (p *Panel) Show(ctx context.Context, st domain.RenderState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width, height, err := st.Settings.Dimensions()
	if err != nil {
		return err
	}

	pl, err := Build(st, p.xMin, p.xMax)
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(p.path)), ".")
	if format == "" {
		format = "svg"
	}

	// Settings are in screen pixels; vg lengths are points.
	wt, err := pl.WriterTo(pixels(width), pixels(height), format)
	if err != nil {
		return &domain.OpError{Op: "plotrender.encode", Kind: domain.KindInvalidConfig, Path: p.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return &domain.OpError{Op: "plotrender.mkdir", Kind: domain.KindExecution, Path: p.path, Err: err}
	}

	tmp := p.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &domain.OpError{Op: "plotrender.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if _, err := wt.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "plotrender.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "plotrender.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "plotrender.rename", Kind: domain.KindExecution, Path: p.path, Err: err}
	}

	p.mu.Lock()
	p.last = &st
	p.mu.Unlock()
	return nil
}

// Last returns the state currently on display.
func (p *Panel) Last() (domain.RenderState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return domain.RenderState{}, false
	}
	return *p.last, true
}

func pixels(px float64) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}
