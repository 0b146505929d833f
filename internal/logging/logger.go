package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/sanity-io/litter"
)

// Level represents a logging level
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var charmLevels = map[Level]log.Level{
	DEBUG: log.DebugLevel,
	INFO:  log.InfoLevel,
	WARN:  log.WarnLevel,
	ERROR: log.ErrorLevel,
}

// String returns the name of the level
func (l Level) String() string {
	return levelNames[l]
}

// ParseLevel converts a level name such as "debug" into a Level
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if strings.EqualFold(name, levelName) {
			return level, nil
		}
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

// Logger is a leveled logger writing through charmbracelet/log
type Logger struct {
	base  *log.Logger
	level Level
}

// NewLogger creates a new logger writing to stderr
func NewLogger(level Level) *Logger {
	return New(os.Stderr, level, "")
}

// New creates a logger writing to w
func New(w io.Writer, level Level, prefix string) *Logger {
	base := log.NewWithOptions(w, log.Options{
		Level:           charmLevels[level],
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
	})
	return &Logger{
		base:  base,
		level: level,
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New(io.Discard, ERROR, "")
}

// Level returns the minimum level this logger writes
func (l *Logger) Level() Level {
	return l.level
}

// WithPrefix returns a child logger with a different prefix
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{base: l.base.WithPrefix(prefix), level: l.level}
}

// With returns a child logger that adds key/value pairs to every line
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{base: l.base.With(keyvals...), level: l.level}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.base.Debugf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.base.Infof(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.base.Warnf(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.base.Errorf(format, v...)
}

// Dump writes a readable rendering of v at debug level
func (l *Logger) Dump(label string, v interface{}) {
	if l.level > DEBUG {
		return
	}
	dump := litter.Options{
		Compact:           true,
		StripPackageNames: true,
	}.Sdump(v)
	l.base.Debug(label, "state", dump)
}

// LogError logs a GameError with appropriate context
func (l *Logger) LogError(err error) {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		// Format error context
		context := []string{
			fmt.Sprintf("Code: %s", gameErr.Code),
			fmt.Sprintf("Message: %s", gameErr.Message),
		}
		if gameErr.Err != nil {
			context = append(context, fmt.Sprintf("Cause: %v", gameErr.Err))
		}

		l.Error("Game error occurred:\n\t%s", strings.Join(context, "\n\t"))
	} else {
		l.Error("Unexpected error: %v", err)
	}
}

// Default logger instance
var Default = NewLogger(INFO)
