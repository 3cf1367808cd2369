package settingsfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

const ignoreHeader = "# graphplot local state"

// Init prepares root for graphplot: a default settings file, the log
// directory and .gitignore entries for local state. Existing settings are
// kept unless force is set.
func Init(root string, force bool) (string, error) {
	root = filepath.Clean(root)

	if err := os.MkdirAll(LogDir(root), 0o755); err != nil {
		return "", &domain.OpError{Op: "settingsfile.init", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return "", &domain.OpError{Op: "settingsfile.init", Kind: domain.KindExecution, Path: root, Err: err}
	}

	store := InDir(root)
	if !force {
		if _, err := os.Stat(store.Path()); err == nil {
			return store.Path(), nil
		}
	}
	return store.Path(), store.Save(domain.DefaultSettings())
}

// ignoredEntries are the files graphplot writes next to the settings and
// that should stay out of version control.
func ignoredEntries() []string {
	return []string{StateDir + "/", FileName + ".tmp"}
}

// ensureGitignore appends whichever ignored entries are missing as one
// block. Existing content is never rewritten.
func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	missing := missingEntries(string(existing), ignoredEntries())
	if len(missing) == 0 {
		return nil
	}

	block := ignoreHeader + "\n" + strings.Join(missing, "\n") + "\n"
	switch {
	case len(existing) == 0:
	case bytes.HasSuffix(existing, []byte("\n")):
		block = "\n" + block
	default:
		block = "\n\n" + block
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(block); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// missingEntries returns the entries of want not already listed in content.
// A directory entry matches with or without its trailing slash.
func missingEntries(content string, want []string) []string {
	have := map[string]bool{}
	for _, line := range strings.Split(content, "\n") {
		if l := strings.TrimSpace(line); l != "" && !strings.HasPrefix(l, "#") {
			have[strings.TrimSuffix(l, "/")] = true
		}
	}

	var out []string
	for _, e := range want {
		if !have[strings.TrimSuffix(e, "/")] {
			out = append(out, e)
		}
	}
	return out
}
