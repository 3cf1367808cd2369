package usecase

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

var (
	errNoPanel = errors.New("no panel configured")
	reLine     = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
)

// UserMessage turns err into the one short line shown in a notice.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Unexpected error (see logs)"
	}

	switch oe.Kind {
	case domain.KindInvalidSelection:
		var ie *domain.VectorIndexError
		if errors.As(err, &ie) {
			return fmt.Sprintf("No vector %d in selection", ie.Index)
		}
		return "Invalid Syntax"

	case domain.KindMalformedVector:
		if errors.Is(err, domain.ErrDimensionMismatch) {
			return "Vectors have different dimensions"
		}
		return "Invalid vector: expected " + domain.VectorBegin

	case domain.KindInvalidNumber:
		var ne *domain.InvalidNumberError
		if errors.As(err, &ne) {
			return "Invalid number " + ne.Text
		}
		return "Invalid number"

	case domain.KindDegenerateVectors:
		return "Vectors are identical"

	case domain.KindNotFound:
		if strings.Contains(oe.Op, "selection") {
			return "Note not found"
		}
		return "Not found"

	case domain.KindInvalidConfig:
		base := "settings"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if m := reLine.FindStringSubmatch(err.Error()); len(m) == 2 {
			return "Invalid YAML at " + base + " line " + m[1]
		}
		return "Invalid " + base

	default:
		return "Unexpected error (see logs)"
	}
}
