package logs

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Level of importance of a log entry
type Level uint32

const (
	ErrorLevel Level = Level(logrus.ErrorLevel)
	WarnLevel  Level = Level(logrus.WarnLevel)
	InfoLevel  Level = Level(logrus.InfoLevel)
	DebugLevel Level = Level(logrus.DebugLevel)
	TraceLevel Level = Level(logrus.TraceLevel)
)

// ParseLevel takes a string level and returns the log Level
// constant
func ParseLevel(lvl string) (Level, error) {
	l, err := logrus.ParseLevel(lvl)
	if err != nil {
		return 0, err
	}

	return Level(l), nil
}

// Fields is a set of key value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to
// describe themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a Loggable backed by a map
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is the logging interface used by the containers
type Logger interface {
	// IsLevelEnabled returns true if entries at level would be emitted.
	// Callers on hot paths check it before building fields
	IsLevelEnabled(level Level) bool

	Trace(msg string, loggable Loggable)
	Debug(msg string, loggable Loggable)
	Info(msg string, loggable Loggable)
	Warn(msg string, loggable Loggable)
	Error(msg string, loggable Loggable)

	// ForClass returns a logger that tags every entry with
	// the package and class that emits it
	ForClass(pkg, class string) Logger
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

// LogrusLogger is the implementation of Logger on top of logrus
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger creates a Logger that writes through l
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// NewLogger creates a Logger that writes json entries to out
// for any entry of level lvl or more important
func NewLogger(lvl string, out io.Writer) (*LogrusLogger, error) {
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{})
	return NewLogrusLogger(l), nil
}

// NewDiscardLogger creates a Logger that drops every entry
func NewDiscardLogger() *LogrusLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return NewLogrusLogger(l)
}

func (l *LogrusLogger) IsLevelEnabled(level Level) bool {
	return l.entry.Logger.IsLevelEnabled(logrus.Level(level))
}

func (l *LogrusLogger) log(level logrus.Level, msg string, loggable Loggable) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}

	fields := logrusFields{}
	if loggable != nil {
		loggable.Log(fields)
	}

	l.entry.WithFields(logrus.Fields(fields)).Log(level, msg)
}

func (l *LogrusLogger) Trace(msg string, loggable Loggable) {
	l.log(logrus.TraceLevel, msg, loggable)
}

func (l *LogrusLogger) Debug(msg string, loggable Loggable) {
	l.log(logrus.DebugLevel, msg, loggable)
}

func (l *LogrusLogger) Info(msg string, loggable Loggable) {
	l.log(logrus.InfoLevel, msg, loggable)
}

func (l *LogrusLogger) Warn(msg string, loggable Loggable) {
	l.log(logrus.WarnLevel, msg, loggable)
}

func (l *LogrusLogger) Error(msg string, loggable Loggable) {
	l.log(logrus.ErrorLevel, msg, loggable)
}

func (l *LogrusLogger) ForClass(pkg, class string) Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields{
		"package": pkg,
		"class":   class,
	})}
}
