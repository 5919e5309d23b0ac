package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/paycrest/nucleus-go/config"
	"github.com/sirupsen/logrus"
)

var (
	logger        = logrus.New()
	sentryEnabled bool
)

func init() {
	logger.Level = logrus.InfoLevel
	logger.Formatter = &formatter{}
	logger.Out = os.Stderr
}

// Init configures the logger for the host process.
// Sentry reporting is only enabled for production and staging environments with a DSN.
func Init(cfg *config.ServerConfiguration, output io.Writer) error {
	logger.Formatter = &formatter{}
	if output != nil {
		logger.Out = output
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.Level = level
	}

	sentryEnabled = false
	if (cfg.Environment == "production" || cfg.Environment == "staging") && cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			AttachStacktrace: true,
		})
		if err != nil {
			return fmt.Errorf("sentry initialization failed: %w", err)
		}
		sentryEnabled = true
	} else if cfg.LogFile != "" && output == nil {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", cfg.LogFile, err)
		}
		logger.Out = file
	}

	return nil
}

// SetLogLevel sets the log level for the logger.
func SetLogLevel(level logrus.Level) {
	logger.Level = level
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	logger.Out = w
}

// Fields type, used to pass to `WithFields`.
type Fields logrus.Fields

// ErrorWithFields logs an error with additional context
func ErrorWithFields(err error, fields Fields) {
	if logger.Level >= logrus.ErrorLevel {
		if sentryEnabled {
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetLevel(sentry.LevelError)
				applyScope(scope, fields)
				sentry.CaptureException(err)
			})
		}
		logger.WithFields(logrus.Fields(fields)).Error(err.Error())
	}
}

// Debugf logs a message at level Debug with optional fields
func Debugf(format string, fields Fields, args ...interface{}) {
	if logger.Level >= logrus.DebugLevel {
		logger.WithFields(logrus.Fields(fields)).Debugf(format, args...)
	}
}

// Infof logs a message at level Info with optional fields
func Infof(format string, fields Fields, args ...interface{}) {
	if logger.Level >= logrus.InfoLevel {
		logger.WithFields(logrus.Fields(fields)).Infof(format, args...)
	}
}

// Warnf logs a message at level Warn with optional fields
func Warnf(format string, fields Fields, args ...interface{}) {
	if logger.Level >= logrus.WarnLevel {
		if sentryEnabled {
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetLevel(sentry.LevelWarning)
				applyScope(scope, fields)
				sentry.CaptureMessage(fmt.Sprintf(format, args...))
			})
		}
		logger.WithFields(logrus.Fields(fields)).Warnf(format, args...)
	}
}

// Errorf logs an error message with fields
func Errorf(format string, fields Fields, args ...interface{}) {
	if logger.Level >= logrus.ErrorLevel {
		errMsg := fmt.Sprintf(format, args...)
		if sentryEnabled {
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetLevel(sentry.LevelError)
				applyScope(scope, fields)
				sentry.CaptureMessage(errMsg)
			})
		}
		logger.WithFields(logrus.Fields(fields)).Error(errMsg)
	}
}

// Fatalf logs a fatal message with fields and exits
func Fatalf(format string, fields Fields, args ...interface{}) {
	if sentryEnabled {
		sentry.WithScope(func(scope *sentry.Scope) {
			applyScope(scope, fields)
			sentry.CaptureMessage(fmt.Sprintf(format, args...))
		})
		sentry.Flush(2 * time.Second)
	}
	logger.WithFields(logrus.Fields(fields)).Fatalf(format, args...)
}

// strings become tags so they are searchable, everything else goes to extras
func applyScope(scope *sentry.Scope, fields Fields) {
	for key, value := range fields {
		switch v := value.(type) {
		case string:
			scope.SetTag(key, v)
		default:
			scope.SetExtra(key, value)
		}
	}
}

// Formatter implements logrus.Formatter interface
type formatter struct {
	prefix string
}

// Format building log message
func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb bytes.Buffer
	sb.WriteString(strings.ToUpper(entry.Level.String()))
	sb.WriteString(" ")
	sb.WriteString(entry.Time.Format(time.RFC3339))
	sb.WriteString(" ")
	sb.WriteString(f.prefix)
	sb.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for key := range entry.Data {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		sb.WriteString(" [")
		for i, key := range keys {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%s=%v", key, entry.Data[key]))
		}
		sb.WriteString("]")
	}
	sb.WriteString("\n")

	return sb.Bytes(), nil
}
