package settingsfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/nicoletanyt/obsidian-plugin-graphs/internal/domain"
)

// Query evaluates a JSONPath expression (e.g. "$.width") against the
// settings in their JSON shape and returns the matched value as text.
// A bare field name is accepted as shorthand for "$.<name>".
func Query(cfg domain.Settings, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = "$"
	}
	if !strings.HasPrefix(expr, "$") {
		expr = "$." + expr
	}

	b, err := json.Marshal(cfg)
	if err != nil {
		return "", &domain.OpError{Op: "settingsfile.query", Kind: domain.KindExecution, Err: err}
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", &domain.OpError{Op: "settingsfile.query", Kind: domain.KindExecution, Err: err}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", &domain.OpError{
			Op:   "settingsfile.query",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: %w", expr, err),
		}
	}

	switch t := val.(type) {
	case string:
		return t, nil
	case bool, float64:
		return fmt.Sprint(t), nil
	default:
		out, err := json.Marshal(t)
		if err != nil {
			return "", &domain.OpError{Op: "settingsfile.query", Kind: domain.KindExecution, Err: err}
		}
		return string(out), nil
	}
}
