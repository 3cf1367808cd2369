package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Settings controls how a plot is drawn. Width and Height are stored as
// strings because that is how the settings form edits them.
type Settings struct {
	XLabel      string `json:"xLabel"`
	YLabel      string `json:"yLabel"`
	DisableZoom bool   `json:"disableZoom"`
	Grid        bool   `json:"grid"`
	Width       string `json:"width"`
	Height      string `json:"height"`
	Title       string `json:"title"`
}

// DefaultSettings provides the values used for any field missing from storage.
func DefaultSettings() Settings {
	return Settings{
		XLabel:      "",
		YLabel:      "",
		DisableZoom: false,
		Grid:        true,
		Width:       "800",
		Height:      "560",
		Title:       "",
	}
}

// SettingsFields lists the settings keys in display order.
var SettingsFields = []string{"xLabel", "yLabel", "disableZoom", "grid", "width", "height", "title"}

// Dimensions parses Width and Height.
func (s Settings) Dimensions() (width, height float64, err error) {
	width, err = parseDimension("width", s.Width)
	if err != nil {
		return 0, 0, err
	}
	height, err = parseDimension("height", s.Height)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// Set updates a single field by its settings key and returns the new value.
func (s Settings) Set(field, value string) (Settings, error) {
	out := s
	switch field {
	case "xLabel":
		out.XLabel = value
	case "yLabel":
		out.YLabel = value
	case "title":
		out.Title = value
	case "width":
		if _, err := parseDimension(field, value); err != nil {
			return s, err
		}
		out.Width = strings.TrimSpace(value)
	case "height":
		if _, err := parseDimension(field, value); err != nil {
			return s, err
		}
		out.Height = strings.TrimSpace(value)
	case "disableZoom", "grid":
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return s, invalidSetting(field, fmt.Sprintf("expected true/false, got %q", value))
		}
		if field == "grid" {
			out.Grid = b
		} else {
			out.DisableZoom = b
		}
	default:
		return s, invalidSetting(field, "unknown setting")
	}
	return out, nil
}

func parseDimension(field, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return 0, invalidSetting(field, fmt.Sprintf("expected a positive number, got %q", v))
	}
	return f, nil
}

func invalidSetting(field, msg string) error {
	return &OpError{
		Op:   "settings.field",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}
