package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/notice"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/settingsfile"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/usecase"
)

const (
	replPrompt = "graphplot> "
	replHelp   = `Type a selection to graph it. Commands:
  :vector <selection>       draw column vectors
  :add <a> <b> <selection>  draw vectors plus the resultant of a and b (1-based)
  :at <x>                   evaluate the last graphed functions at x
  :quit                     exit`
)

func replCmd(root *rootOpts) *cobra.Command {
	var out outputFlags

	c := &cobra.Command{
		Use:   "repl",
		Short: "Read selections line by line and redraw the graph for each",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.open(cmd.Name())
			if err != nil {
				return err
			}
			defer s.close()

			panel, path, err := out.panel(cmd, s.root)
			if err != nil {
				return err
			}

			r := &repl{
				out:      cmd.OutOrStdout(),
				panel:    panel,
				path:     path,
				settings: s.settings,
				opts: []usecase.Option{
					usecase.WithLogger(s.log),
					usecase.WithNotifier(notice.New(cmd.ErrOrStderr())),
				},
			}

			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			histPath := settingsfile.StatePath(s.root, settingsfile.HistoryFile)
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if err := os.MkdirAll(filepath.Dir(histPath), 0o755); err != nil {
					return
				}
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()

			fmt.Fprintln(cmd.OutOrStdout(), replHelp)
			for {
				line, err := ln.Prompt(replPrompt)
				if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
					fmt.Fprintln(cmd.OutOrStdout())
					return nil
				}
				if err != nil {
					return err
				}
				if strings.TrimSpace(line) == "" {
					continue
				}
				ln.AppendHistory(line)

				if r.handle(cmd.Context(), line) {
					return nil
				}
			}
		},
	}

	out.register(c)
	return c
}

// repl runs one editor command per input line. Failures are reported as
// notices and never end the session.
type repl struct {
	out      io.Writer
	panel    ports.Panel
	path     string
	settings domain.Settings
	opts     []usecase.Option

	last domain.RenderState
}

func (r *repl) handle(ctx context.Context, line string) (exit bool) {
	line = strings.TrimSpace(line)

	if !strings.HasPrefix(line, ":") {
		r.done(usecase.NewGenerateGraph(r.panel, r.settings, r.opts...).Execute(ctx, line))
		return false
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case ":quit", ":q":
		return true

	case ":help":
		fmt.Fprintln(r.out, replHelp)

	case ":vector":
		r.done(usecase.NewDrawVector(r.panel, r.settings, r.opts...).Execute(ctx, rest))

	case ":add":
		fields := strings.SplitN(rest, " ", 3)
		if len(fields) < 3 {
			fmt.Fprintln(r.out, "usage: :add <a> <b> <selection>")
			return false
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil {
			fmt.Fprintln(r.out, "usage: :add <a> <b> <selection>")
			return false
		}
		r.done(usecase.NewAddVectors(r.panel, r.settings, r.opts...).Execute(ctx, fields[2], a-1, b-1))

	case ":at":
		x, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			fmt.Fprintf(r.out, "Invalid number %s\n", rest)
			return false
		}
		if len(r.last.Functions) == 0 {
			fmt.Fprintln(r.out, "Nothing graphed yet")
			return false
		}
		if err := printAnswers(r.out, r.last, x); err != nil {
			fmt.Fprintln(r.out, usecase.UserMessage(err))
		}

	default:
		fmt.Fprintln(r.out, "unknown command. Type :help for help.")
	}
	return false
}

func (r *repl) done(st domain.RenderState, err error) {
	if err != nil {
		return
	}
	r.last = st
	if r.path != "" {
		fmt.Fprintf(r.out, "Wrote %s\n", r.path)
	}
}
