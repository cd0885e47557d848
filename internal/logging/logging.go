package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the process-wide logrus logger. Interactive TUI views
// own the terminal, so logs go to a rotated file rather than stdout;
// pass an empty file name to silence logging entirely (tests do this).
func Setup(logFile, level string) {
	logrus.SetLevel(parseLevel(level))

	if logFile == "" {
		logrus.SetOutput(io.Discard)
		return
	}

	if !strings.HasSuffix(logFile, ".log") {
		logFile += ".log"
	}
	_ = os.MkdirAll(filepath.Dir(logFile), 0o755)

	logrus.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 2,
		LocalTime:  true,
	})
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}
