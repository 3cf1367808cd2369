package logger

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	FileName        = "graphplot.log"
	DefaultMaxBytes = 1 << 20
)

type Config struct {
	Dir   string
	Debug bool

	// Command is attached to every record so one log file can hold
	// several invocations (graph, vector, repl, ...).
	Command string

	// MaxBytes rotates an existing log to FileName+".1" once it reaches
	// this size. Zero means DefaultMaxBytes.
	MaxBytes int64
}

type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = sink{log: discard()}
)

// Setup routes L() to <dir>/graphplot.log. On failure the logger keeps
// discarding and the error is returned for the caller to ignore or report.
func Setup(cfg Config) (func() error, error) {
	dir := filepath.Clean(cfg.Dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		closeSink(swap(sink{log: discard()}))
		return nil, err
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, cfg.MaxBytes); err != nil {
		closeSink(swap(sink{log: discard()}))
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		closeSink(swap(sink{log: discard()}))
		return nil, err
	}

	l := slog.New(handler(f, cfg.Debug)).With("app", "graphplot")
	if cfg.Command != "" {
		l = l.With("command", cfg.Command)
	}
	closeSink(swap(sink{log: l, file: f, path: path}))

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		old := swap(sink{log: discard()})
		if old.file == nil {
			return nil
		}
		return old.file.Close()
	}
	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

func handler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

// rotate keeps one previous generation of the log.
func rotate(path string, limit int64) error {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < limit {
		return nil
	}
	return os.Rename(path, path+".1")
}

func swap(next sink) sink {
	mu.Lock()
	defer mu.Unlock()
	prev := cur
	cur = next
	return prev
}

func closeSink(s sink) {
	if s.file != nil {
		_ = s.file.Close()
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
