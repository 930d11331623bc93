// Where: internal/audit/log.go
// What: Append-only operational log for every external invocation.
// Why: Write-only audit trail with size-based rotation; never consulted by logic.
package audit

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/argonaut-cli/argonaut/internal/execx"
)

// DefaultLogFile is the log location when --log-file is not given.
const DefaultLogFile = "argonaut.log"

// maxSizeMB is the rotation threshold, matching the 500 MB the tool has
// always used.
const maxSizeMB = 500

// Log records invocation outcomes and loop-level faults.
type Log struct {
	entry *logrus.Logger
}

// Open creates a log appending to path, rotated past the size threshold.
func Open(path string) *Log {
	if path == "" {
		path = DefaultLogFile
	}
	logger := logrus.New()
	logger.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
	})
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)
	return &Log{entry: logger}
}

// Discard returns a log that writes nowhere, for tests.
func Discard() *Log {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Log{entry: logger}
}

// Invocation records the outcome of one external command run: info on
// success, error with the captured diagnostic text otherwise.
func (l *Log) Invocation(action string, res execx.Result) {
	fields := logrus.Fields{
		"action":  action,
		"command": res.Tool + " " + strings.Join(redactArgs(res.Args), " "),
	}
	switch {
	case !res.ToolFound:
		l.entry.WithFields(fields).Errorf("command not found: %s", res.Tool)
	case res.ExitCode != 0:
		l.entry.WithFields(fields).WithField("exit_code", res.ExitCode).
			Error(strings.TrimSpace(res.Stderr))
	default:
		l.entry.WithFields(fields).Info("success")
	}
}

// redactArgs masks the value following any --password flag so credentials
// never land in the audit trail.
func redactArgs(args []string) []string {
	redacted := make([]string, len(args))
	copy(redacted, args)
	for i, arg := range redacted {
		if arg == "--password" && i+1 < len(redacted) {
			redacted[i+1] = "****"
		}
	}
	return redacted
}

// Error records a non-invocation fault (parse failures, unexpected faults).
func (l *Log) Error(action, msg string) {
	l.entry.WithField("action", action).Error(msg)
}

// Info records an informational event.
func (l *Log) Info(action, msg string) {
	l.entry.WithField("action", action).Info(msg)
}
