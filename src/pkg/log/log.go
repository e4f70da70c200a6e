// Package log is the service-wide structured logger. Every entry carries the
// service name, the calling context and scope, and a free-form meta value,
// usually a session or job id.
package log

import (
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	levelDebug = 1
	levelWarn  = 2
	levelError = 3
)

type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var logger Log

var mapOfLogLevel = map[string]int{
	"DEBUG": levelDebug,
	"INFO":  levelDebug,
	"WARN":  levelWarn,
	"ERROR": levelError,
}

// InitLogger sets the singleton from app.name and log.level.
func InitLogger(v *viper.Viper) {
	logger = NewLogger(v.GetString("app.name"), v.GetString("log.level"))
}

// NewLogger builds a logger without touching the singleton. Unknown levels
// log everything.
func NewLogger(appName, levelStr string) Log {
	levelStr = strings.ToUpper(levelStr)
	level, ok := mapOfLogLevel[levelStr]
	if !ok {
		level = levelDebug
	}

	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return Log{
		AppName:  appName,
		LogLevel: level,
		Logger:   l,
	}
}

func GetLogger() Log {
	return logger
}

// WithOutput returns a copy writing to w.
func (l Log) WithOutput(w io.Writer) Log {
	out := logrus.New()
	out.SetFormatter(&logrus.JSONFormatter{})
	out.SetLevel(logrus.DebugLevel)
	out.SetOutput(w)
	l.Logger = out
	return l
}

func (l Log) entry(context, scope, meta string) *logrus.Entry {
	base := l.Logger
	if base == nil {
		base = logrus.StandardLogger()
	}
	return base.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
	})
}

// caller skips this helper and the exported method that called it.
func caller(skip int) (string, int) {
	_, file, line, _ := runtime.Caller(skip + 2)
	return file, line
}

func (l Log) Info(context, message, scope, meta string) {
	if l.LogLevel > levelDebug {
		return
	}
	file, line := caller(0)
	l.entry(context, scope, meta).WithFields(logrus.Fields{"file": file, "line": line}).Info(message)
}

// Warn is for failures the request survives, such as a session that could
// not be persisted.
func (l Log) Warn(context, message, scope, meta string) {
	if l.LogLevel > levelWarn {
		return
	}
	file, line := caller(0)
	l.entry(context, scope, meta).WithFields(logrus.Fields{"file": file, "line": line}).Warn(message)
}

func (l Log) Error(context, message, scope, meta string) {
	if l.LogLevel > levelError {
		return
	}
	file, line := caller(0)
	file2, line2 := caller(1)
	l.entry(context, scope, meta).WithFields(logrus.Fields{
		"file1": file,
		"line1": line,
		"file2": file2,
		"line2": line2,
	}).Error(message)
}

// Slow reports the caller's caller, usually the handler that took too long.
func (l Log) Slow(context, message, scope, meta string) {
	if l.LogLevel > levelDebug {
		return
	}
	file, line := caller(1)
	l.entry(context, scope, meta).WithFields(logrus.Fields{"file": file, "line": line}).Info("[SLOW] " + message)
}
