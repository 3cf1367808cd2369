package tui

import "github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"

// commandDoneMsg carries the outcome of one editor command.
type commandDoneMsg struct {
	op      string
	state   domain.RenderState
	shown   bool
	notices []string
	err     error
}

type answerMsg struct {
	expr string
	x    float64
	y    float64
	err  error
}
