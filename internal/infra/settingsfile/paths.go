package settingsfile

import "path/filepath"

const (
	// FileName is the settings file looked up from the working directory upward.
	FileName = "graphplot.yaml"
	// AltFileName is accepted as well when FileName is absent.
	AltFileName = "graphplot.yml"

	// StateDir holds local, uncommitted state next to the settings file.
	StateDir    = ".graphplot"
	LogsDir     = "logs"
	HistoryFile = "history"
	GraphFile   = "graph.svg"
)

// StatePath joins elem under root's state directory.
func StatePath(root string, elem ...string) string {
	return filepath.Join(append([]string{root, StateDir}, elem...)...)
}

// LogDir is where the log file for root lives.
func LogDir(root string) string { return StatePath(root, LogsDir) }
