package ports

import (
	"context"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

// Panel displays a render state. Each call replaces whatever was shown before.
type Panel interface {
	Show(ctx context.Context, state domain.RenderState) error
}
