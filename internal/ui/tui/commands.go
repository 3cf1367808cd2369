package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/evaluator"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/notice"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/usecase"
)

const commandTimeout = 30 * time.Second

// capturePanel records the state a command shows and forwards it to next.
type capturePanel struct {
	next  ports.Panel
	state domain.RenderState
	shown bool
}

func (c *capturePanel) Show(ctx context.Context, st domain.RenderState) error {
	if c.next != nil {
		if err := c.next.Show(ctx, st); err != nil {
			return err
		}
	}
	c.state = st
	c.shown = true
	return nil
}

type runFunc func(ctx context.Context, panel ports.Panel, opts ...usecase.Option) error

func runCommand(deps Deps, op string, fn runFunc) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}

		panel := &capturePanel{next: deps.Output}
		rec := &notice.Recorder{}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		err := fn(ctx, panel, usecase.WithLogger(log), usecase.WithNotifier(rec))
		return commandDoneMsg{
			op:      op,
			state:   panel.state,
			shown:   panel.shown,
			notices: rec.Notices,
			err:     err,
		}
	}
}

func cmdGenerateGraph(deps Deps, selection string) tea.Cmd {
	return runCommand(deps, "graph", func(ctx context.Context, panel ports.Panel, opts ...usecase.Option) error {
		_, err := usecase.NewGenerateGraph(panel, deps.Settings, opts...).Execute(ctx, selection)
		return err
	})
}

func cmdDrawVector(deps Deps, selection string) tea.Cmd {
	return runCommand(deps, "vector", func(ctx context.Context, panel ports.Panel, opts ...usecase.Option) error {
		_, err := usecase.NewDrawVector(panel, deps.Settings, opts...).Execute(ctx, selection)
		return err
	})
}

func cmdAddVectors(deps Deps, selection string, a, b int) tea.Cmd {
	return runCommand(deps, "add", func(ctx context.Context, panel ports.Panel, opts ...usecase.Option) error {
		_, err := usecase.NewAddVectors(panel, deps.Settings, opts...).Execute(ctx, selection, a, b)
		return err
	})
}

// cmdEvaluate computes expr at the x typed by the user.
func cmdEvaluate(expr, rawX string) tea.Cmd {
	return func() tea.Msg {
		x, err := strconv.ParseFloat(strings.TrimSpace(rawX), 64)
		if err != nil {
			return answerMsg{expr: expr, err: &domain.OpError{
				Op:   "tui.evaluate",
				Kind: domain.KindInvalidNumber,
				Err:  &domain.InvalidNumberError{Text: strings.TrimSpace(rawX)},
			}}
		}
		fn, err := evaluator.Compile(expr)
		if err != nil {
			return answerMsg{expr: expr, x: x, err: err}
		}
		y, err := fn.Eval(x)
		return answerMsg{expr: expr, x: x, y: y, err: err}
	}
}
