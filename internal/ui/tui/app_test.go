package tui

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

func testDeps() Deps {
	return Deps{Settings: domain.DefaultSettings()}
}

func TestGenerateGraphCommandUpdatesModel(t *testing.T) {
	m := newModel(testDeps())

	msg := cmdGenerateGraph(m.deps, `f(x) = x^2\newline g(x) = x`)()
	done, ok := msg.(commandDoneMsg)
	if !ok {
		t.Fatalf("expected commandDoneMsg, got %T", msg)
	}
	if done.err != nil || !done.shown {
		t.Fatalf("unexpected result err=%v shown=%v", done.err, done.shown)
	}

	next, _ := m.Update(done)
	m = next.(model)

	if m.toast != "Generating Graph" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if got := len(m.items.Items()); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
	if m.state.Kind != domain.KindScalar {
		t.Fatalf("expected scalar state, got %q", m.state.Kind)
	}
}

func TestFailedCommandKeepsPreviousState(t *testing.T) {
	m := newModel(testDeps())

	next, _ := m.Update(cmdDrawVector(m.deps, `\vec{a} = \begin{pmatrix} 1 \\ 2 \end{pmatrix}`)())
	m = next.(model)
	if len(m.state.Vectors) != 1 {
		t.Fatalf("expected one vector, got %d", len(m.state.Vectors))
	}

	next, _ = m.Update(cmdDrawVector(m.deps, "x^2")())
	m = next.(model)

	if m.toast != "Invalid Syntax" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if len(m.state.Vectors) != 1 {
		t.Fatalf("state should be unchanged, got %+v", m.state)
	}
}

func TestMarkAndAddVectors(t *testing.T) {
	m := newModel(testDeps())
	sel := `\vec{a} = \begin{pmatrix} 1 \\ 1 \end{pmatrix}\newline \vec{b} = \begin{pmatrix} 3 \\ 4 \end{pmatrix}`

	next, _ := m.Update(cmdDrawVector(m.deps, sel)())
	m = next.(model)
	m.focus = focusList

	m = m.toggleMark()
	m.items.Select(1)
	m = m.toggleMark()
	if len(m.marked) != 2 || m.marked[0] != 0 || m.marked[1] != 1 {
		t.Fatalf("unexpected marks %v", m.marked)
	}

	next, _ = m.Update(cmdAddVectors(m.deps, sel, m.marked[0], m.marked[1])())
	m = next.(model)

	if len(m.state.Vectors) != 3 {
		t.Fatalf("expected resultant to be appended, got %d vectors", len(m.state.Vectors))
	}
	res := m.state.Vectors[2]
	if !res.Resultant || res.Vector.X() != 2 || res.Vector.Y() != 3 {
		t.Fatalf("unexpected resultant %+v", res)
	}
	if m.marked != nil {
		t.Fatalf("marks should reset after a new state, got %v", m.marked)
	}
}

func TestToggleMarkKeepsTwoNewest(t *testing.T) {
	m := newModel(testDeps())
	m.state = domain.RenderState{
		Kind: domain.KindVector,
		Vectors: []domain.PlacedVector{
			{Label: "a", Vector: domain.VectorLiteral{1, 0}, Offset: domain.VectorLiteral{0, 0}},
			{Label: "b", Vector: domain.VectorLiteral{0, 1}, Offset: domain.VectorLiteral{0, 0}},
			{Label: "c", Vector: domain.VectorLiteral{1, 1}, Offset: domain.VectorLiteral{0, 0}},
		},
	}
	m.items.SetItems(itemsFor(m.state, nil))

	for i := 0; i < 3; i++ {
		m.items.Select(i)
		m = m.toggleMark()
	}
	if len(m.marked) != 2 || m.marked[0] != 1 || m.marked[1] != 2 {
		t.Fatalf("unexpected marks %v", m.marked)
	}
}

func TestEvaluateAnswer(t *testing.T) {
	msg := cmdEvaluate("f(x) = x^2 + 1", "3")()
	ans, ok := msg.(answerMsg)
	if !ok {
		t.Fatalf("expected answerMsg, got %T", msg)
	}
	if ans.err != nil || ans.y != 10 {
		t.Fatalf("unexpected answer %+v", ans)
	}

	m := newModel(testDeps())
	next, _ := m.Update(ans)
	m = next.(model)
	if m.answer != "y = 10 at x = 3" {
		t.Fatalf("unexpected answer text %q", m.answer)
	}
}

func TestEvaluateRejectsBadX(t *testing.T) {
	m := newModel(testDeps())
	next, _ := m.Update(cmdEvaluate("x", "abc")())
	m = next.(model)
	if m.toast != "Invalid number abc" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestViewShowsPlaceholderWhenEmpty(t *testing.T) {
	m := newModel(testDeps())
	if !strings.Contains(m.View(), domain.EmptyPlaceholder) {
		t.Fatalf("expected placeholder in view")
	}
}

func TestSafeModelForwardsUpdates(t *testing.T) {
	s := wrapSafe(newModel(testDeps()), nil)
	s.m.busy = true

	next, cmd := s.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if cmd != nil {
		t.Fatalf("unexpected cmd")
	}
	if _, ok := next.(safeModel); !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
}

func TestAddKeyNeedsTwoMarks(t *testing.T) {
	sel := `\vec{a} = \begin{pmatrix} 1 \\ 1 \end{pmatrix}\newline \vec{b} = \begin{pmatrix} 3 \\ 4 \end{pmatrix}`
	m := newModel(Deps{Settings: domain.DefaultSettings(), Selection: sel})

	next, _ := m.Update(cmdDrawVector(m.deps, sel)())
	m = next.(model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = next.(model)
	if cmd != nil || m.busy {
		t.Fatalf("add must not start without two marks")
	}
	if m.toast != "Mark two vectors with space first" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestAddKeyRejectsEditedSelection(t *testing.T) {
	sel := `\vec{a} = \begin{pmatrix} 1 \\ 1 \end{pmatrix}\newline \vec{b} = \begin{pmatrix} 3 \\ 4 \end{pmatrix}`
	m := newModel(Deps{Settings: domain.DefaultSettings(), Selection: sel})

	next, _ := m.Update(cmdDrawVector(m.deps, sel)())
	m = next.(model)
	m = m.toggleMark()
	m.items.Select(1)
	m = m.toggleMark()

	m.selection.SetValue(`\vec{c} = \begin{pmatrix} 5 \\ 5 \end{pmatrix}`)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = next.(model)
	if cmd != nil || m.busy {
		t.Fatalf("add must not start on an edited selection")
	}
	if m.toast != "Selection changed: draw the vectors again" {
		t.Fatalf("unexpected toast %q", m.toast)
	}

	m.selection.SetValue(sel)
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = next.(model)
	if cmd == nil || !m.busy {
		t.Fatalf("add should start once the selection matches the drawn vectors")
	}
}

// panicHandler makes every log call panic, which is the easiest way to
// fail inside model.Update.
type panicHandler struct{}

func (panicHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (panicHandler) Handle(context.Context, slog.Record) error { panic("boom") }
func (h panicHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h panicHandler) WithGroup(string) slog.Handler           { return h }

func TestSafeModelTurnsPanicIntoToast(t *testing.T) {
	deps := testDeps()
	deps.Logger = slog.New(panicHandler{})
	s := wrapSafe(newModel(deps), nil)
	s.m.busy = true
	s.m.state = domain.RenderState{Kind: domain.KindScalar, Functions: []domain.Function{{Expr: "x", Color: "red"}}}

	next, cmd := s.Update(commandDoneMsg{op: "graph", shown: true})
	if cmd != nil {
		t.Fatalf("no command expected after a panic")
	}
	got := next.(safeModel)
	if got.m.busy {
		t.Fatalf("busy should be cleared")
	}
	if got.m.toast != "Unexpected error (see logs)" {
		t.Fatalf("unexpected toast %q", got.m.toast)
	}
	if len(got.m.state.Functions) != 1 {
		t.Fatalf("state shown before the panic must be kept")
	}
}
