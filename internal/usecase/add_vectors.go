package usecase

import (
	"context"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

const noticeAdding = "Adding Vectors..."

type AddVectors struct {
	command
}

func NewAddVectors(panel ports.Panel, settings domain.Settings, opts ...Option) *AddVectors {
	return &AddVectors{command: newCommand(panel, settings, opts...)}
}

// Execute draws the selection's vectors plus the resultant of vectors a and b
// (0-based, in selection order), anchored at a.
func (uc *AddVectors) Execute(ctx context.Context, selection string, a, b int) (domain.RenderState, error) {
	const op = "vector.add"
	if err := ctx.Err(); err != nil {
		return domain.RenderState{}, err
	}

	state, err := deriveVectors(op, selection, uc.settings)
	if err != nil {
		return domain.RenderState{}, uc.fail(op, err)
	}

	state, err = state.WithResultant(a, b)
	if err != nil {
		return domain.RenderState{}, uc.fail(op, err)
	}
	return uc.show(ctx, op, state, noticeAdding)
}
