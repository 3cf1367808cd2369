package usecase

import (
	"context"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

type fakePanel struct {
	shown []domain.RenderState
	err   error
}

func (p *fakePanel) Show(_ context.Context, st domain.RenderState) error {
	if p.err != nil {
		return p.err
	}
	p.shown = append(p.shown, st)
	return nil
}

type fakeNotifier struct {
	notices []string
}

func (n *fakeNotifier) Notice(msg string) {
	n.notices = append(n.notices, msg)
}
