// Package logger builds the application's zerolog logger and the diagnostic sink handed to the adapter
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const simpleTimeFormat = "02-01-2006 15:04:05"

// New constructs a zerolog logger according to the runtime environment.
// Development environments receive human readable console logs, other
// environments emit JSON. Explicit writers replace the default stdout output.
func New(env, level string, writers ...io.Writer) (*zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = simpleTimeFormat
	zerolog.DurationFieldUnit = time.Millisecond

	var output io.Writer
	if len(writers) > 0 {
		output = io.MultiWriter(writers...)
	} else if strings.EqualFold(env, "development") || strings.EqualFold(env, "dev") {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: simpleTimeFormat}
	} else {
		output = os.Stdout
	}

	logger := zerolog.New(output).With().Timestamp().Logger().Level(lvl)
	return &logger, nil
}

// NewConsole builds a logger writing human readable lines to out
func NewConsole(level string, out io.Writer) (*zerolog.Logger, error) {
	return New("development", level, zerolog.ConsoleWriter{Out: out, TimeFormat: simpleTimeFormat, NoColor: true})
}

// NewRotatingFile returns a size-rotated log file writer
func NewRotatingFile(filename string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxAge:     28,
		MaxSize:    5,
		MaxBackups: 3,
		Compress:   true,
	}
}

func parseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, err
	}
	return lvl, nil
}

// Diagnostic writes plain debug and error lines for a single component
type Diagnostic struct {
	logger zerolog.Logger
}

// NewDiagnostic tags every line written through it with component
func NewDiagnostic(logger zerolog.Logger, component string) *Diagnostic {
	return &Diagnostic{
		logger: logger.With().Str("component", component).Logger(),
	}
}

// Debug writes msg at debug level
func (d *Diagnostic) Debug(msg string) {
	d.logger.Debug().Msg(msg)
}

// Error writes msg at error level
func (d *Diagnostic) Error(msg string) {
	d.logger.Error().Msg(msg)
}
