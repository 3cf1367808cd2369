package settingsfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
	"gopkg.in/yaml.v3"
)

// Store reads and writes settings as YAML at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// InDir returns a store for the settings file inside dir.
func InDir(dir string) *Store {
	return NewStore(filepath.Join(dir, FileName))
}

var _ ports.SettingsStore = (*Store)(nil)

func (s *Store) Path() string { return s.path }

// Load merges the stored settings over the defaults. A missing file is not
// an error: every field then falls back to its default.
func (s *Store) Load() (domain.Settings, error) {
	cfg := domain.DefaultSettings()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "settingsfile.load",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	var y yamlSettings
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "settingsfile.load",
			Kind: domain.KindInvalidConfig,
			Path: s.path,
			Err:  err,
		}
	}

	return y.apply(cfg), nil
}

func (s *Store) Save(cfg domain.Settings) error {
	b, err := yaml.Marshal(fromSettings(cfg))
	if err != nil {
		return &domain.OpError{
			Op:   "settingsfile.marshal",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "settingsfile.mkdir",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "settingsfile.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "settingsfile.rename",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

type yamlSettings struct {
	Plot struct {
		XLabel      *string `yaml:"x_label"`
		YLabel      *string `yaml:"y_label"`
		DisableZoom *bool   `yaml:"disable_zoom"`
		Grid        *bool   `yaml:"grid"`
		Width       *string `yaml:"width"`
		Height      *string `yaml:"height"`
		Title       *string `yaml:"title"`
	} `yaml:"plot"`
}

// apply sets the parsed values on top of defaults.
func (y yamlSettings) apply(cfg domain.Settings) domain.Settings {
	p := y.Plot
	if p.XLabel != nil {
		cfg.XLabel = *p.XLabel
	}
	if p.YLabel != nil {
		cfg.YLabel = *p.YLabel
	}
	if p.DisableZoom != nil {
		cfg.DisableZoom = *p.DisableZoom
	}
	if p.Grid != nil {
		cfg.Grid = *p.Grid
	}
	if p.Width != nil {
		cfg.Width = *p.Width
	}
	if p.Height != nil {
		cfg.Height = *p.Height
	}
	if p.Title != nil {
		cfg.Title = *p.Title
	}
	return cfg
}

func fromSettings(cfg domain.Settings) yamlSettings {
	var y yamlSettings
	y.Plot.XLabel = &cfg.XLabel
	y.Plot.YLabel = &cfg.YLabel
	y.Plot.DisableZoom = &cfg.DisableZoom
	y.Plot.Grid = &cfg.Grid
	y.Plot.Width = &cfg.Width
	y.Plot.Height = &cfg.Height
	y.Plot.Title = &cfg.Title
	return y
}
