package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	kiterrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

// Options configures New. An empty Level means info, a nil Writer means stderr.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is the structured logger handed to widgets and commands. A nil
// *Logger is valid and drops everything.
type Logger struct {
	base zerolog.Logger
}

// ParseLevel maps a --log-level value onto a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.NoLevel, kiterrors.NewValidationError("log_level", "unknown level "+level, err)
	}
	return parsed, nil
}

func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Discard returns a logger that drops every entry. Widgets use it when no
// logger was injected.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// WithComponent tags every entry with the emitting component.
func (l *Logger) WithComponent(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("component", name).Logger()}
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Info(msg string)  { l.emit(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.emit(zerolog.WarnLevel, nil, msg) }

// Error writes msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
