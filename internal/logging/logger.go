package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Fields carries extra key/value pairs attached to a single event.
type Fields map[string]interface{}

// Logger tags every event with the component that emitted it.
type Logger struct {
	logger zerolog.Logger
}

func New(w io.Writer, level zerolog.Level) *Logger {
	l := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{logger: l}
}

// NewConsole writes human readable output to stderr.
func NewConsole(level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, level)
}

// Nop discards everything. Safe to use as a default.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

func (l *Logger) Debug(component, msg string, fields Fields) {
	l.emit(l.logger.Debug(), component, msg, fields)
}

func (l *Logger) Info(component, msg string, fields Fields) {
	l.emit(l.logger.Info(), component, msg, fields)
}

func (l *Logger) Warning(component, msg string, fields Fields) {
	l.emit(l.logger.Warn(), component, msg, fields)
}

func (l *Logger) Error(component, msg string, err error, fields Fields) {
	l.emit(l.logger.Error().Err(err), component, msg, fields)
}

func (l *Logger) emit(event *zerolog.Event, component, msg string, fields Fields) {
	if event == nil {
		return
	}
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}
