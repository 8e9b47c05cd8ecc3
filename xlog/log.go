// Package xlog provides the package-level zerolog logger shared by the
// strext packages and the strext command.
package xlog

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex // protects std
	std                 = newConsole(os.Stderr)
	out    io.Writer    = os.Stderr
	asJSON bool
)

func newConsole(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
}

func newJSON(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := std
	return &l
}

// SetOutput redirects the logger to w, keeping the current level and format.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	lvl := std.GetLevel()
	out = w
	if asJSON {
		std = newJSON(w).Level(lvl)
	} else {
		std = newConsole(w).Level(lvl)
	}
}

// SetJSON switches between JSON lines (true) and the console format (false).
func SetJSON(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	lvl := std.GetLevel()
	asJSON = enabled
	if enabled {
		std = newJSON(out).Level(lvl)
	} else {
		std = newConsole(out).Level(lvl)
	}
}

// SetLevel parses a zerolog level name ("debug", "info", ...) and applies it.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "xlog")
	}
	mu.Lock()
	std = std.Level(lvl)
	mu.Unlock()
	return nil
}

func Debug() *zerolog.Event { return logger().Debug() }
func Info() *zerolog.Event  { return logger().Info() }
func Warn() *zerolog.Event  { return logger().Warn() }
func Error() *zerolog.Event { return logger().Error() }
func Fatal() *zerolog.Event { return logger().Fatal() }

// Print sends a log event using info level and no extra field.
func Print(v string) {
	logger().Info().Msg(v)
}

// Printf sends a log event using info level and no extra field.
// Arguments are handled in the manner of fmt.Printf.
func Printf(format string, v ...any) {
	logger().Info().Msgf(format, v...)
}
