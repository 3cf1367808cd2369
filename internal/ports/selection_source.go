package ports

import "context"

// SelectionSource provides the text the user selected (e.g., from a note file or stdin).
type SelectionSource interface {
	Selection(ctx context.Context) (string, error)
}
