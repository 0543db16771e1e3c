package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/coachstats/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileExt = ".log"

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// FallbackOutput receives the logs when no logs file can be used, STDOUT if nil.
	FallbackOutput io.Writer
}

// Setup configures the global logrus logger for a coachstats binary.
// Without a usable logs directory everything goes to the fallback output.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	fallback := params.FallbackOutput
	if fallback == nil {
		fallback = os.Stdout
	}

	if params.LogFileName == "" {
		logrus.SetOutput(fallback)
		logrus.Debugln("coachstats: logs path not set, no logs file")
		return
	}

	logsDir := filepath.Dir(params.LogFileName)
	dirExists, err := pkg.PathExists(logsDir, true)
	if err != nil || !dirExists {
		logrus.SetOutput(fallback)
		logrus.Warnf("coachstats: logs dir [%s] not usable (err: %v), no logs file", logsDir, err)
		return
	}

	if !strings.HasSuffix(params.LogFileName, logFileExt) {
		params.LogFileName += logFileExt
	}

	logrus.SetOutput(logsOutput(params))
	logrus.Debugf("coachstats: logging to [%s], stdout copy: %t", params.LogFileName, params.LogToStdout)
}

// logsOutput rotates the log file at 50 MB and keeps 90 days of backups.
func logsOutput(params LoggerSetupParams) io.Writer {
	rotated := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    50, // MB
		LocalTime:  false,
		Compress:   true,
		MaxBackups: 30,
		MaxAge:     90, // days
	}
	if !params.LogToStdout {
		return rotated
	}
	return pkg.NewCombinedWriter(os.Stdout, rotated)
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("coachstats: sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infof("coachstats: sentry hook added for [%s]", params.SentryServerName)
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
