package settingsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s := InDir(t.TempDir())

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_MergesPartialFileOverDefaults(t *testing.T) {
	tmp := t.TempDir()
	content := []byte("plot:\n  title: Parabola\n  grid: false\n")
	if err := os.WriteFile(filepath.Join(tmp, FileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := InDir(tmp).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Title != "Parabola" {
		t.Fatalf("expected title Parabola, got %q", cfg.Title)
	}
	if cfg.Grid {
		t.Fatalf("expected grid=false")
	}
	if cfg.Width != "800" || cfg.Height != "560" {
		t.Fatalf("expected default dimensions, got %s x %s", cfg.Width, cfg.Height)
	}
	if cfg.DisableZoom {
		t.Fatalf("expected default disable_zoom=false")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, FileName)
	if err := os.WriteFile(path, []byte("plot: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewStore(path).Load()
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	s := InDir(t.TempDir())

	want := domain.DefaultSettings()
	want.XLabel = "t"
	want.YLabel = "v(t)"
	want.DisableZoom = true
	want.Width = "640"

	if err := s.Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be renamed away")
	}
}
