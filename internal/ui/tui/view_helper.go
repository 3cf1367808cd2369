package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func formatVector(v domain.VectorLiteral) string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = formatNumber(c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// renderSummary describes the settings a state was rendered with.
func renderSummary(st domain.RenderState) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Kind: %s\n", st.Kind))
	b.WriteString(fmt.Sprintf("Size: %s x %s\n", st.Settings.Width, st.Settings.Height))
	if st.Settings.Title != "" {
		b.WriteString("Title: " + st.Settings.Title + "\n")
	}
	if st.Settings.XLabel != "" || st.Settings.YLabel != "" {
		b.WriteString(fmt.Sprintf("Axes: %s / %s\n", st.Settings.XLabel, st.Settings.YLabel))
	}
	b.WriteString(fmt.Sprintf("Grid: %t  Zoom: %t\n", st.Settings.Grid, !st.Settings.DisableZoom))

	return b.String()
}
