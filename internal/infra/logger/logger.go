// Package logger routes structured logs to <root>/.lab/logs/lab.log.
// Until Setup succeeds every logger discards its output.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	LogDir  = ".lab/logs"
	LogFile = "lab.log"

	// DefaultMaxBytes is the size at which Setup moves lab.log aside to
	// lab.log.1 before opening a fresh file.
	DefaultMaxBytes int64 = 5 << 20
)

type Config struct {
	Root  string
	Debug bool

	// MaxBytes overrides DefaultMaxBytes. Negative disables rotation.
	MaxBytes int64

	// Attrs are attached to every record, e.g. "version", buildinfo.Version.
	Attrs []any
}

// sink is the process-wide logging state guarded by mu.
type sink struct {
	log     *slog.Logger
	file    *os.File
	path    string
	started time.Time
}

var (
	mu      sync.RWMutex
	current = discardSink()
)

func discardSink() sink {
	return sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func Setup(cfg Config) (func() error, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}

	dir := filepath.Join(filepath.Clean(root), filepath.FromSlash(LogDir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(discardSink())
		return nil, err
	}

	path := filepath.Join(dir, LogFile)
	rotated, err := rotate(path, cfg.maxBytes())
	if err != nil {
		swap(discardSink())
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discardSink())
		return nil, err
	}

	l := slog.New(slog.NewJSONHandler(f, handlerOptions(cfg.Debug)))
	if len(cfg.Attrs) > 0 {
		l = l.With(cfg.Attrs...)
	}

	swap(sink{log: l, file: f, path: path, started: time.Now().UTC()})
	l.Info("logger.initialized", "path", path, "debug", cfg.Debug, "rotated", rotated)

	return Close, nil
}

func (c Config) maxBytes() int64 {
	if c.MaxBytes == 0 {
		return DefaultMaxBytes
	}
	return c.MaxBytes
}

func handlerOptions(debug bool) *slog.HandlerOptions {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return opts
}

// rotate renames path to path+".1" once it has grown past limit. Only one
// generation is kept.
func rotate(path string, limit int64) (bool, error) {
	if limit < 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.Size() < limit {
		return false, nil
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return false, err
	}
	return true, nil
}

// swap installs next and closes the file held by the previous sink.
func swap(next sink) error {
	mu.Lock()
	prev := current
	current = next
	mu.Unlock()

	if prev.file != nil && prev.file != next.file {
		return prev.file.Close()
	}
	return nil
}

// Close flushes the log file and resets the global logger to discard.
// It is safe to call when Setup never ran.
func Close() error {
	return swap(discardSink())
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

// Component returns the global logger tagged with a component name.
func Component(name string) *slog.Logger {
	return L().With("component", name)
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.path
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return current.started
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if current.file == nil {
		return errors.New("logger not initialized")
	}
	return nil
}
