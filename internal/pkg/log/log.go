package log

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelWriter adapts a logger to io.Writer, each line is one log message.
type LevelWriter struct {
	level  zapcore.Level
	logger *zap.SugaredLogger
}

func (w *LevelWriter) Write(p []byte) (n int, err error) {
	lines := strings.TrimRight(string(p), "\n")
	for _, line := range strings.Split(lines, "\n") {
		msg := strings.TrimRight(line, "\n")
		switch w.level {
		case zapcore.DebugLevel:
			w.logger.Debug(msg)
		case zapcore.InfoLevel:
			w.logger.Info(msg)
		case zapcore.WarnLevel:
			w.logger.Warn(msg)
		default:
			w.logger.Error(msg)
		}
	}
	return len(p), nil
}

func (w *LevelWriter) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

func ToDebugWriter(l *zap.SugaredLogger) *LevelWriter {
	return &LevelWriter{zapcore.DebugLevel, l}
}

func ToInfoWriter(l *zap.SugaredLogger) *LevelWriter {
	return &LevelWriter{zapcore.InfoLevel, l}
}

func ToWarnWriter(l *zap.SugaredLogger) *LevelWriter {
	return &LevelWriter{zapcore.WarnLevel, l}
}

// NewLogger creates a logger for console and optionally a log file.
func NewLogger(stdout io.Writer, stderr io.Writer, logFile *os.File, verbose bool) *zap.SugaredLogger {
	var cores []zapcore.Core

	// Log to file
	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	// Log to stdout
	cores = append(cores, stdoutCore(stdout, verbose))

	// Log to stderr
	cores = append(cores, stderrCore(stderr, verbose))

	return zap.New(zapcore.NewTee(cores...)).Sugar()
}

func fileCore(logFile *os.File) zapcore.Core {
	// Log all levels
	fileLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return true })

	// Log time, level, msg
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})
	return zapcore.NewCore(encoder, logFile, fileLevels)
}

func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	consoleLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		// Log debug, info -> if verbose output enabled
		if verbose {
			return l == zapcore.DebugLevel || l == zapcore.InfoLevel
		}

		// Log info only
		return l == zapcore.InfoLevel
	})

	// Prefix messages with level only when verbose enabled
	levelKey := ""
	if verbose {
		levelKey = "level"
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})

	return zapcore.NewCore(encoder, zapcore.AddSync(stdout), consoleLevels)
}

func stderrCore(stderr io.Writer, verbose bool) zapcore.Core {
	// Prefix messages with level only when verbose enabled
	levelKey := ""
	if verbose {
		levelKey = "level"
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "\t",
	})

	return zapcore.NewCore(encoder, zapcore.AddSync(stderr), zapcore.WarnLevel)
}
