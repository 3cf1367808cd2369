package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/usecase"
)

// safeModel keeps the panel alive when an update or a render panics: the
// graph shown before the failing message stays on screen and the failure
// becomes a toast like any other command error.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		inner tea.Model
		cmd   tea.Cmd
	)
	if err := s.guard("tui.update", msg, func() { inner, cmd = s.m.Update(msg) }); err != nil {
		s.m.busy = false
		s.m.toast = usecase.UserMessage(err)
		return s, nil
	}

	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, cmd
}

func (s safeModel) View() string {
	var out string
	if err := s.guard("tui.view", nil, func() { out = s.m.View() }); err != nil {
		fallback := s.m
		fallback.state = domain.RenderState{Kind: domain.KindEmpty, Settings: s.m.deps.Settings}
		fallback.toast = usecase.UserMessage(err)
		if err := s.guard("tui.view.fallback", nil, func() { out = fallback.View() }); err != nil {
			return fallback.toast
		}
	}
	return out
}

// guard runs fn and turns a panic into an execution error after logging it
// with the message being handled.
func (s safeModel) guard(op string, msg tea.Msg, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", op,
				"msg_type", fmt.Sprintf("%T", msg),
				"selection", s.m.selection.Value(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			err = &domain.OpError{Op: op, Kind: domain.KindExecution, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	fn()
	return nil
}

var _ tea.Model = (*safeModel)(nil)
