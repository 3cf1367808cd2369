package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

const noticeDrawing = "Drawing Vectors..."

type DrawVector struct {
	command
}

func NewDrawVector(panel ports.Panel, settings domain.Settings, opts ...Option) *DrawVector {
	return &DrawVector{command: newCommand(panel, settings, opts...)}
}

// Execute plots every expression of the selection as a column vector.
// Selections without the vector marker are rejected before anything is parsed.
func (uc *DrawVector) Execute(ctx context.Context, selection string) (domain.RenderState, error) {
	const op = "vector.draw"
	if err := ctx.Err(); err != nil {
		return domain.RenderState{}, err
	}

	state, err := deriveVectors(op, selection, uc.settings)
	if err != nil {
		return domain.RenderState{}, uc.fail(op, err)
	}
	return uc.show(ctx, op, state, noticeDrawing)
}

func deriveVectors(op, selection string, settings domain.Settings) (domain.RenderState, error) {
	normalized := domain.Normalize(selection)
	if !strings.Contains(normalized, domain.VectorMarker) {
		return domain.RenderState{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidSelection,
			Err:  fmt.Errorf("selection has no %s: %w", domain.VectorMarker, domain.ErrInvalidSelection),
		}
	}
	return domain.Derive(domain.Split(normalized), domain.KindVector, settings)
}
