package settingsfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/ports"
)

// Finder walks up from a directory (or a note file) to the nearest
// settings file.
type Finder struct {
	names []string
}

func NewFinder() *Finder {
	return &Finder{names: []string{FileName, AltFileName}}
}

var _ ports.SettingsLocator = (*Finder)(nil)

// Locate returns the path of the nearest settings file at or above start.
// In one directory graphplot.yaml wins over graphplot.yml.
func (f *Finder) Locate(start string) (string, error) {
	const op = "settingsfile.locate"

	if strings.TrimSpace(start) == "" {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("start directory is empty: %w", domain.ErrInvalidConfig),
		}
	}

	dir, err := searchStart(start)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: start, Err: err}
	}

	for d := dir; ; d = filepath.Dir(d) {
		for _, name := range f.names {
			p := filepath.Join(d, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}
		if filepath.Dir(d) == d {
			break
		}
	}

	return "", &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Path: dir,
		Err:  fmt.Errorf("no %s at or above %s: %w", FileName, dir, domain.ErrNotFound),
	}
}

// searchStart resolves start to an absolute directory; a note file is
// replaced by the directory it lives in.
func searchStart(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return filepath.Clean(abs), nil
}
