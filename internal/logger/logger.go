package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/skilltrack/internal/constants"
)

// Logger is the process-wide logger. It stays nil until Init runs, and every helper
// below is a no-op in that state so library code can log unconditionally.
var Logger *log.Logger

var logPath string

type Config struct {
	Debug   bool
	DataDir string
	// Output overrides the rotating log file, mainly for tests.
	Output io.Writer
}

// Init builds the global logger. Normal runs log WARN and above to a rotating file
// under <DataDir>/logs; debug runs log everything to the file and stderr.
func Init(cfg Config) error {
	writer := cfg.Output
	logPath = ""
	if writer == nil {
		logDir := filepath.Join(cfg.DataDir, "logs")
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}

		logPath = filepath.Join(logDir, constants.AppName+".log")
		writer = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		writer = io.MultiWriter(os.Stderr, writer)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Path is the rotating log file, or "" when logging to a caller-supplied writer.
func Path() string {
	return logPath
}
