package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/buildinfo"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/logger"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/infra/settingsfile"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOpts struct {
	debug    bool
	settings string
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:          "graphplot",
		Short:        "graphplot: plot functions and column vectors from LaTeX selections",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .graphplot/logs/graphplot.log")
	cmd.PersistentFlags().StringVar(&opts.settings, "settings", "", "Settings file (optional; autodetected if omitted)")

	cmd.AddCommand(
		graphCmd(opts),
		vectorCmd(opts),
		addCmd(opts),
		viewCmd(opts),
		replCmd(opts),
		initCmd(),
		settingsCmd(opts),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// session is what every plotting command works with: where the settings
// live, what they say and where to log.
type session struct {
	root     string
	store    *settingsfile.Store
	settings domain.Settings
	log      *slog.Logger
	cleanup  func() error
}

func (o *rootOpts) open(command string) (*session, error) {
	root, storePath, err := resolveSettings(o.settings)
	if err != nil {
		return nil, err
	}

	s := &session{root: root, store: settingsfile.NewStore(storePath)}

	cleanup, lerr := logger.Setup(logger.Config{
		Dir:     settingsfile.LogDir(root),
		Debug:   o.debug,
		Command: command,
	})
	if lerr == nil {
		s.cleanup = cleanup
	}
	s.log = logger.L()

	cfg, err := s.store.Load()
	if err != nil {
		s.log.Error("settings.load.failed", "path", s.store.Path(), "err", err)
		s.close()
		return nil, err
	}
	s.settings = cfg

	s.log.Debug("session.open", "root", root, "settings", s.store.Path())
	return s, nil
}

func (s *session) close() {
	if s != nil && s.cleanup != nil {
		_ = s.cleanup()
	}
}

// resolveSettings returns the root directory (logs, history, default output)
// and the settings file path. An explicit flag wins; otherwise the nearest
// settings file above the working directory, falling back to a new one in it.
func resolveSettings(flag string) (root, path string, err error) {
	if f := strings.TrimSpace(flag); f != "" {
		abs, err := filepath.Abs(f)
		if err != nil {
			return "", "", fmt.Errorf("invalid settings path: %w", err)
		}
		return filepath.Dir(abs), abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	var locator ports.SettingsLocator = settingsfile.NewFinder()
	if found, ferr := locator.Locate(wd); ferr == nil {
		return filepath.Dir(found), found, nil
	}
	return wd, filepath.Join(wd, settingsfile.FileName), nil
}
