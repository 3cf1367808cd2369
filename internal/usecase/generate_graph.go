package usecase

import (
	"context"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

const noticeGenerating = "Generating Graph"

type GenerateGraph struct {
	command
}

func NewGenerateGraph(panel ports.Panel, settings domain.Settings, opts ...Option) *GenerateGraph {
	return &GenerateGraph{command: newCommand(panel, settings, opts...)}
}

// Execute plots the selection as scalar functions (or as the forced kind).
// A blank selection produces an empty state so the panel shows its placeholder.
func (uc *GenerateGraph) Execute(ctx context.Context, selection string) (domain.RenderState, error) {
	const op = "graph.generate"
	if err := ctx.Err(); err != nil {
		return domain.RenderState{}, err
	}

	list, kind := domain.ParseSelection(selection)
	if kind != domain.KindEmpty {
		kind = domain.KindScalar
		if uc.forced != "" {
			kind = uc.forced
		}
	}

	uc.log.Debug(op, "expressions", list.Strings(), "kind", string(kind))

	state, err := domain.Derive(list, kind, uc.settings)
	if err != nil {
		return domain.RenderState{}, uc.fail(op, err)
	}
	return uc.show(ctx, op, state, noticeGenerating)
}
