package tui

import (
	"log/slog"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

type Deps struct {
	Settings domain.Settings

	// Output, when set, also receives every state the view shows
	// (for example a file panel writing an SVG next to the note).
	Output ports.Panel

	// Selection pre-fills the selection input.
	Selection string

	Logger *slog.Logger
}
