package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

// command holds what every editor command needs: a panel to update,
// a way to tell the user what happened and the current settings.
type command struct {
	panel    ports.Panel
	notifier ports.Notifier
	settings domain.Settings
	log      *slog.Logger
	forced   domain.InputKind
}

type Option func(*command)

func WithLogger(l *slog.Logger) Option {
	return func(c *command) {
		if l != nil {
			c.log = l
		}
	}
}

func WithNotifier(n ports.Notifier) Option {
	return func(c *command) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithForcedKind makes GenerateGraph render non-empty selections as kind
// instead of as scalar functions.
func WithForcedKind(kind domain.InputKind) Option {
	return func(c *command) { c.forced = kind }
}

func newCommand(panel ports.Panel, settings domain.Settings, opts ...Option) command {
	c := command{
		panel:    panel,
		notifier: discardNotifier{},
		settings: settings,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// show hands state to the panel and confirms with a notice.
func (c command) show(ctx context.Context, op string, state domain.RenderState, notice string) (domain.RenderState, error) {
	if c.panel == nil {
		return domain.RenderState{}, c.fail(op, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: errNoPanel})
	}
	if err := c.panel.Show(ctx, state); err != nil {
		return domain.RenderState{}, c.fail(op, err)
	}

	c.log.Info(op+".ok",
		"kind", string(state.Kind),
		"expressions", len(state.Expressions),
		"functions", len(state.Functions),
		"vectors", len(state.Vectors),
	)
	c.notifier.Notice(notice)
	return state, nil
}

// fail surfaces a single notice and returns err unchanged. Nothing shown
// on the panel is touched.
func (c command) fail(op string, err error) error {
	c.log.Warn(op+".failed", "err", err, "kind", string(domain.KindOf(err)))
	c.notifier.Notice(UserMessage(err))
	return err
}

type discardNotifier struct{}

func (discardNotifier) Notice(string) {}
