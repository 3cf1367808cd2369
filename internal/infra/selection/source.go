package selection

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

// Text is a selection given verbatim (e.g., as a command argument).
type Text string

var _ ports.SelectionSource = Text("")

func (t Text) Selection(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(t), nil
}

// Reader reads the whole selection from r (e.g., stdin).
type Reader struct {
	R io.Reader
}

func (r Reader) Selection(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := io.ReadAll(r.R)
	if err != nil {
		return "", &domain.OpError{Op: "selection.reader", Kind: domain.KindExecution, Err: err}
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// File selects lines From..To (1-based, inclusive) of a note. Zero values
// select from the first line / up to the last line.
type File struct {
	Path string
	From int
	To   int
}

func (f File) Selection(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", &domain.OpError{Op: "selection.file", Kind: domain.KindNotFound, Path: f.Path, Err: err}
	}

	lines := strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	from, to := f.From, f.To
	if from <= 0 {
		from = 1
	}
	if to <= 0 || to > len(lines) {
		to = len(lines)
	}
	if from > to {
		return "", &domain.OpError{
			Op:   "selection.file",
			Kind: domain.KindInvalidSelection,
			Path: f.Path,
			Err:  fmt.Errorf("line range %d-%d outside 1-%d: %w", f.From, f.To, len(lines), domain.ErrInvalidSelection),
		}
	}

	return strings.Join(lines[from-1:to], "\n"), nil
}
