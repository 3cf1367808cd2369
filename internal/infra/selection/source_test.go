package selection

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

func writeNote(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}
	return p
}

func TestText(t *testing.T) {
	got, err := Text("$x^2$").Selection(context.Background())
	if err != nil || got != "$x^2$" {
		t.Fatalf("got %q (%v)", got, err)
	}
}

func TestReaderTrimsTrailingNewline(t *testing.T) {
	got, err := Reader{R: strings.NewReader("x+1\n")}.Selection(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "x+1" {
		t.Fatalf("got %q", got)
	}
}

func TestFileLineRange(t *testing.T) {
	p := writeNote(t, "# Title\r\n$x^2$\r\n$x+1$\r\nend")

	got, err := File{Path: p, From: 2, To: 3}.Selection(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "$x^2$\n$x+1$" {
		t.Fatalf("got %q", got)
	}

	all, err := File{Path: p}.Selection(context.Background())
	if err != nil || !strings.HasPrefix(all, "# Title") || !strings.HasSuffix(all, "end") {
		t.Fatalf("unexpected full selection %q (%v)", all, err)
	}
}

func TestFileErrors(t *testing.T) {
	_, err := File{Path: filepath.Join(t.TempDir(), "missing.md")}.Selection(context.Background())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}

	p := writeNote(t, "one\ntwo")
	_, err = File{Path: p, From: 5}.Selection(context.Background())
	if !domain.IsKind(err, domain.KindInvalidSelection) {
		t.Fatalf("expected KindInvalidSelection, got %v", err)
	}
}
