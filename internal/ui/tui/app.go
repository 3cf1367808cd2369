package tui

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/usecase"
)

type focus int

const (
	focusSelection focus = iota
	focusList
	focusX
)

const noVector = -1

// exprItem is one drawn function or vector.
type exprItem struct {
	title  string
	desc   string
	expr   string // function body; "" for vectors
	vector int    // position in RenderState.Vectors, noVector for functions
	marked bool
	result bool
}

func (i exprItem) Title() string {
	if i.marked {
		return "✓ " + i.title
	}
	return i.title
}
func (i exprItem) Description() string { return i.desc }
func (i exprItem) FilterValue() string { return i.title }

type model struct {
	theme Theme
	deps  Deps

	focus     focus
	selection textinput.Model
	xInput    textinput.Model
	items     list.Model

	state  domain.RenderState
	marked []int

	answer string
	toast  string
	busy   bool
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	sel := textinput.New()
	sel.Placeholder = `f(x) = x^2 \newline g(x) = 2x`
	sel.Prompt = "selection › "
	sel.SetValue(deps.Selection)
	sel.Focus()

	x := textinput.New()
	x.Placeholder = "Input the value of x"
	x.Prompt = "x › "

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Expressions"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:     t,
		deps:      deps,
		focus:     focusSelection,
		selection: sel,
		xInput:    x,
		items:     l,
		state:     domain.RenderState{Kind: domain.KindEmpty, Settings: deps.Settings},
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.items.SetSize(msg.Width-8, msg.Height-16)
		m.selection.Width = msg.Width - 20
		m.xInput.Width = 20
		return m, nil

	case commandDoneMsg:
		m.busy = false
		m.logger().Info("tui."+msg.op+".done", "shown", msg.shown, "err", msg.err)
		if len(msg.notices) > 0 {
			m.toast = msg.notices[len(msg.notices)-1]
		}
		if msg.err == nil && msg.shown {
			m.state = msg.state
			m.marked = nil
			m.answer = ""
			m.items.SetItems(itemsFor(m.state, nil))
		}
		return m, nil

	case answerMsg:
		m.logger().Debug("tui.evaluate", "expr", msg.expr, "x", msg.x, "err", msg.err)
		if msg.err != nil {
			m.answer = ""
			m.toast = usecase.UserMessage(msg.err)
			return m, nil
		}
		m.answer = fmt.Sprintf("y = %s at x = %s", formatNumber(msg.y), formatNumber(msg.x))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m = m.cycleFocus()
			return m, nil

		case "ctrl+g":
			return m.start(cmdGenerateGraph(m.deps, m.selection.Value()))

		case "ctrl+e":
			return m.start(cmdDrawVector(m.deps, m.selection.Value()))

		case "ctrl+a":
			if reason := m.addBlocked(); reason != "" {
				m.toast = reason
				return m, nil
			}
			return m.start(cmdAddVectors(m.deps, m.selection.Value(), m.marked[0], m.marked[1]))

		case " ":
			if m.focus == focusList {
				m = m.toggleMark()
				return m, nil
			}

		case "enter":
			if m.focus == focusX {
				it, ok := m.items.SelectedItem().(exprItem)
				if !ok || it.vector != noVector {
					m.toast = "Select a function first"
					return m, nil
				}
				return m, cmdEvaluate(it.expr, m.xInput.Value())
			}
			if m.focus == focusSelection {
				return m.start(cmdGenerateGraph(m.deps, m.selection.Value()))
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSelection:
		m.selection, cmd = m.selection.Update(msg)
	case focusList:
		m.items, cmd = m.items.Update(msg)
	case focusX:
		m.xInput, cmd = m.xInput.Update(msg)
	}
	return m, cmd
}

// addBlocked explains why the marked vectors cannot be added, or returns "".
// Marks index the vectors on screen, so the selection must still be the
// one they were drawn from.
func (m model) addBlocked() string {
	if len(m.marked) != 2 {
		return "Mark two vectors with space first"
	}
	list, _ := domain.ParseSelection(m.selection.Value())
	if !slices.Equal(list, m.state.Expressions) {
		return "Selection changed: draw the vectors again"
	}
	return ""
}

func (m model) logger() *slog.Logger {
	if m.deps.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return m.deps.Logger
}

func (m model) start(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, cmd
}

func (m model) cycleFocus() model {
	m.focus = (m.focus + 1) % 3
	m.selection.Blur()
	m.xInput.Blur()
	switch m.focus {
	case focusSelection:
		m.selection.Focus()
	case focusX:
		m.xInput.Focus()
	}
	return m
}

// toggleMark marks or unmarks the selected vector for addition. At most two
// vectors stay marked; marking a third drops the oldest.
func (m model) toggleMark() model {
	it, ok := m.items.SelectedItem().(exprItem)
	if !ok || it.vector == noVector || it.result {
		return m
	}

	next := make([]int, 0, 2)
	found := false
	for _, v := range m.marked {
		if v == it.vector {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, it.vector)
	}
	if len(next) > 2 {
		next = next[len(next)-2:]
	}
	m.marked = next

	idx := m.items.Index()
	m.items.SetItems(itemsFor(m.state, m.marked))
	m.items.Select(idx)
	return m
}

func itemsFor(st domain.RenderState, marked []int) []list.Item {
	isMarked := func(pos int) bool {
		for _, v := range marked {
			if v == pos {
				return true
			}
		}
		return false
	}

	out := make([]list.Item, 0, len(st.Functions)+len(st.Vectors))
	for _, fn := range st.Functions {
		out = append(out, exprItem{
			title:  swatch(fn.Color) + " " + clampString(fn.Expr, 60),
			desc:   fmt.Sprintf("function %d · %s", fn.Index+1, fn.Color),
			expr:   fn.Expr,
			vector: noVector,
		})
	}
	for pos, v := range st.Vectors {
		desc := fmt.Sprintf("vector %s from %s", formatVector(v.Vector), formatVector(v.Offset))
		if v.Resultant {
			desc = "resultant " + desc
		}
		out = append(out, exprItem{
			title:  swatch(v.Color) + " " + v.Label,
			desc:   desc,
			vector: pos,
			marked: isMarked(pos),
			result: v.Resultant,
		})
	}
	return out
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("graphplot") + "\n" +
		m.theme.Subtitle.Render("Plot functions and column vectors from a LaTeX selection") + "\n"

	var body string
	if m.state.IsEmpty() {
		body = m.theme.Card.Render(domain.EmptyPlaceholder)
	} else {
		body = m.theme.Card.Render(m.items.View() + "\n\n" + m.theme.Help.Render(renderSummary(m.state)))
	}

	selection := m.selection.View()
	if m.focus == focusSelection {
		selection = m.theme.Focused.Render("▌") + selection
	}
	x := m.xInput.View()
	if m.focus == focusX {
		x = m.theme.Focused.Render("▌") + x
	}
	if m.answer != "" {
		x += "  " + m.theme.Answer.Render(m.answer)
	}

	var status string
	switch {
	case m.busy:
		status = m.theme.Help.Render("working…")
	case m.toast != "":
		status = m.theme.Toast.Render("» " + m.toast)
	}

	help := m.theme.Help.Render(strings.Join([]string{
		"enter/ctrl+g graph",
		"ctrl+e vectors",
		"space mark",
		"ctrl+a add",
		"tab focus",
		"esc quit",
	}, " • "))

	return wrap.Render(header + "\n" + selection + "\n\n" + body + "\n" + x + "\n" + status + "\n" + help)
}
