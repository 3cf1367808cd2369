package notice

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

// Writer prints notices as one styled line each.
type Writer struct {
	w     io.Writer
	style lipgloss.Style
}

func New(w io.Writer) *Writer {
	return &Writer{
		w: w,
		style: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")),
	}
}

var _ ports.Notifier = (*Writer)(nil)

func (n *Writer) Notice(msg string) {
	msg = strings.TrimSpace(msg)
	if msg == "" || n.w == nil {
		return
	}
	_, _ = fmt.Fprintln(n.w, n.style.Render("» "+msg))
}

// Recorder keeps the notices it receives, newest last.
type Recorder struct {
	Notices []string
}

func (r *Recorder) Notice(msg string) {
	r.Notices = append(r.Notices, msg)
}

// Last returns the newest notice or "".
func (r *Recorder) Last() string {
	if len(r.Notices) == 0 {
		return ""
	}
	return r.Notices[len(r.Notices)-1]
}
