package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggers() {
	loggersMu.Lock()
	loggers = make(map[string]*logrus.Entry)
	loggersMu.Unlock()
}

func TestNewLogger(t *testing.T) {
	t.Cleanup(resetLoggers)

	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])

	// same component, same entry
	assert.Same(t, logger, NewLogger("test-component"))
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{})

	entry := logger.WithField("component", "test")
	entry.Info("Test message")

	output := buf.String()
	assert.Contains(t, output, "[INFO]")
	assert.Contains(t, output, "test")
	assert.Contains(t, output, "Test message")
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name      string
		formatter *TextFormatter
		entry     *logrus.Entry
		want      []string
		notWant   []string
	}{
		{
			name:      "default format",
			formatter: &TextFormatter{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "test message",
				Data: logrus.Fields{
					"component": "test-component",
					"key1":      "value1",
				},
			},
			want: []string{"[INFO]", "test-component", "test message", "key1=value1"},
		},
		{
			name:      "simple format",
			formatter: &TextFormatter{DisableTimestamp: true, DisableComponent: true},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "warning message",
				Data: logrus.Fields{
					"component": "test-component",
				},
			},
			want:    []string{"[WARN]", "warning message"},
			notWant: []string{"test-component"},
		},
		{
			name:      "caller information with function name",
			formatter: &TextFormatter{},
			entry: func() *logrus.Entry {
				logger := logrus.New()
				logger.SetReportCaller(true)
				return &logrus.Entry{
					Logger:  logger,
					Level:   logrus.InfoLevel,
					Message: "test message with caller",
					Data: logrus.Fields{
						"component": "test-component",
					},
					Caller: &runtime.Frame{
						File:     "/path/to/file.go",
						Line:     42,
						Function: "github.com/example/package.TestFunction",
					},
				}
			}(),
			want: []string{"[INFO]", "test message with caller", "[file.go:42 package.TestFunction]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.entry.Time = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

			output, err := tt.formatter.Format(tt.entry)
			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, string(output), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, string(output), notWant)
			}
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "msg",
		Data:    logrus.Fields{"b": 2, "a": 1, "c": 3},
	}
	output, err := (&TextFormatter{DisableTimestamp: true}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] msg a=1 b=2 c=3\n", string(output))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("WINECONF_LOG_LEVEL", "debug")
	t.Setenv("WINECONF_LOG_CALLER", "true")
	t.Setenv("WINECONF_LOG_FORMAT", "json")

	cfg := LoadConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.ReportCaller)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "auto", cfg.Stderr)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("WINECONF_LOG_CALLER", "not-a-bool")

	cfg := LoadConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.ReportCaller)
}

func TestNewLoggerSinks(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "wineconf.log")
	stderr, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	defer stderr.Close()

	entry := newLogger("sinks", Config{
		Level:  "debug",
		File:   logFile,
		Format: "text",
		Stderr: "auto",
	}, stderr)

	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
	entry.Debug("probe")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe")

	// a regular file is not a terminal, so auto mode writes to it too
	data, err = os.ReadFile(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "probe"))
}

func TestNewLoggerNeverStderr(t *testing.T) {
	entry := newLogger("quiet", Config{Level: "info", Stderr: "never"}, os.Stderr)
	assert.Equal(t, io.Discard, entry.Logger.Out)
}

func TestNewLoggerBadLevel(t *testing.T) {
	entry := newLogger("bad-level", Config{Level: "loud", Stderr: "never"}, os.Stderr)
	assert.Equal(t, logrus.InfoLevel, entry.Logger.GetLevel())
	_, isJSON := entry.Logger.Formatter.(*logrus.JSONFormatter)
	assert.False(t, isJSON)
}
