package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/functionplot"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/plotrender"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/selection"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/settingsfile"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

const (
	formatAuto         = ""
	formatFunctionPlot = "functionplot"
)

// selectionFlags choose where the selection comes from: positional
// arguments, a line range of a note file, or stdin.
type selectionFlags struct {
	file string
	from int
	to   int
}

func (f *selectionFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.file, "file", "f", "", "Note file to read the selection from")
	c.Flags().IntVar(&f.from, "from", 0, "First line of the selection in --file (1-based)")
	c.Flags().IntVar(&f.to, "to", 0, "Last line of the selection in --file (inclusive)")
}

func (f selectionFlags) source(cmd *cobra.Command, args []string) ports.SelectionSource {
	switch {
	case len(args) > 0:
		return selection.Text(strings.Join(args, " "))
	case strings.TrimSpace(f.file) != "":
		return selection.File{Path: f.file, From: f.from, To: f.to}
	default:
		return selection.Reader{R: cmd.InOrStdin()}
	}
}

func (f selectionFlags) read(ctx context.Context, cmd *cobra.Command, args []string) (string, error) {
	return f.source(cmd, args).Selection(ctx)
}

type outputFlags struct {
	out    string
	format string
	xMin   float64
	xMax   float64
}

func (o *outputFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&o.out, "out", "o", "", "Output file (default <root>/"+settingsfile.StateDir+"/"+settingsfile.GraphFile+")")
	c.Flags().StringVar(&o.format, "format", formatAuto, "Output format: svg|png|functionplot (default from --out extension)")
	c.Flags().Float64Var(&o.xMin, "x-min", -10, "Left end of the x range for functions")
	c.Flags().Float64Var(&o.xMax, "x-max", 10, "Right end of the x range for functions")
}

// panel builds the panel for the chosen format. The function-plot payload
// goes to stdout; images go to a file that every run replaces.
func (o outputFlags) panel(cmd *cobra.Command, root string) (ports.Panel, string, error) {
	format := strings.ToLower(strings.TrimSpace(o.format))

	switch format {
	case formatFunctionPlot:
		return functionplot.Writer{W: cmd.OutOrStdout()}, "", nil

	case formatAuto, "svg", "png", "pdf", "eps":
		path := strings.TrimSpace(o.out)
		if path == "" {
			path = settingsfile.StatePath(root, settingsfile.GraphFile)
		}
		if format != formatAuto && !strings.EqualFold(filepath.Ext(path), "."+format) {
			path = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
		}
		return plotrender.New(path, plotrender.WithXRange(o.xMin, o.xMax)), path, nil

	default:
		return nil, "", fmt.Errorf("unsupported format %q (expected svg|png|functionplot)", o.format)
	}
}
