package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	cleanup, err := Setup(Config{Dir: dir, Debug: true, Command: "graph"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(dir, FileName)
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("graph.generate", "expressions", 2)
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected path reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if !strings.Contains(out, `"msg":"logger.initialized"`) || !strings.Contains(out, `"msg":"graph.generate"`) {
		t.Fatalf("unexpected log content %q", out)
	}
	if !strings.Contains(out, `"command":"graph"`) || !strings.Contains(out, `"app":"graphplot"`) {
		t.Fatalf("expected command and app attributes, got %q", out)
	}
}

func TestSetupRotatesLargeLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 64)), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cleanup, err := Setup(Config{Dir: dir, MaxBytes: 32})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	old, err := os.ReadFile(path + ".1")
	if err != nil {
		t.Fatalf("expected rotated log: %v", err)
	}
	if len(old) != 64 {
		t.Fatalf("rotated log should keep old content, got %d bytes", len(old))
	}
	cur, _ := os.ReadFile(path)
	if strings.Contains(string(cur), "xxxx") {
		t.Fatalf("new log should start fresh")
	}
}

func TestSetupKeepsSmallLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("previous\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cleanup, err := Setup(Config{Dir: dir})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	_ = cleanup()

	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Fatalf("small log must not rotate, stat err=%v", err)
	}
	b, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(b), "previous\n") {
		t.Fatalf("expected append, got %q", string(b))
	}
}
