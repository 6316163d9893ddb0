/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system. Tests configuration validation, the
three output formats, level filtering and the log file with retention.
*/

package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/shiftcipher/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, config *logging.LoggerConfig) (*logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	config.Output = &buf
	logger, err := logging.NewLogger(config)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger, &buf
}

// TestLoggerConfigValidate tests rejection of invalid configurations
func TestLoggerConfigValidate(t *testing.T) {
	assert.NoError(t, logging.DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(c *logging.LoggerConfig)
	}{
		{"bad format", func(c *logging.LoggerConfig) { c.Format = "xml" }},
		{"bad level", func(c *logging.LoggerConfig) { c.Level = "verbose" }},
		{"no retention", func(c *logging.LoggerConfig) { c.OutputDir = "logs"; c.MaxFiles = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := logging.DefaultConfig()
			tt.modify(config)
			assert.Error(t, config.Validate())

			_, err := logging.NewLogger(config)
			assert.Error(t, err)
		})
	}
}

// TestCustomFormat tests the operation prefix and sorted fields
func TestCustomFormat(t *testing.T) {
	logger, buf := newTestLogger(t, &logging.LoggerConfig{
		Level:  logging.LogLevelInfo,
		Format: logging.LogFormatCustom,
	})

	logger.LogOperation("encrypt", 3, 11, nil)

	line := buf.String()
	assert.Equal(t, "INFO [ENCRYPT] Operation completed key=3 length=11\n", line)
}

// TestJSONFormat tests that JSON entries carry the structured fields
func TestJSONFormat(t *testing.T) {
	logger, buf := newTestLogger(t, &logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatJSON,
		Timestamp: true,
	})

	logger.LogKeyRecovery(3, 0.0012, 35, map[string]interface{}{"operation": "decrypt"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Key recovered", entry["msg"])
	assert.Equal(t, "decrypt", entry["operation"])
	assert.Equal(t, float64(3), entry["key"])
	assert.Equal(t, float64(35), entry["letters"])
	assert.Contains(t, entry, "time")
}

// TestTextFormat tests the logrus text formatter
func TestTextFormat(t *testing.T) {
	logger, buf := newTestLogger(t, &logging.LoggerConfig{
		Level:  logging.LogLevelWarning,
		Format: logging.LogFormatText,
	})

	logger.Warning("Message is short", map[string]interface{}{"letters": 5})

	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), `msg="Message is short"`)
	assert.Contains(t, buf.String(), "letters=5")
}

// TestLogLevels tests that entries below the level are dropped
func TestLogLevels(t *testing.T) {
	logger, buf := newTestLogger(t, &logging.LoggerConfig{
		Level:  logging.LogLevelWarning,
		Format: logging.LogFormatCustom,
	})

	logger.Debug("Debug message", nil)
	logger.Info("Info message", nil)
	logger.LogCandidate(4, nil)
	assert.Empty(t, buf.String())

	logger.Warning("Warning message", nil)
	logger.Error("Error message", map[string]interface{}{"key": "value"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "WARNING Warning message", lines[0])
	assert.Equal(t, "ERROR Error message key=value", lines[1])
}

// TestFileOutput tests the log file and retention of old files
func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"shiftcipher_2000-01-01_00-00-00.000.log",
		"shiftcipher_2000-01-02_00-00-00.000.log",
		"shiftcipher_2000-01-03_00-00-00.000.log",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("old\n"), 0644))
	}

	var console bytes.Buffer
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  2,
		Output:    &console,
	})
	require.NoError(t, err)

	logger.Info("Written to both", nil)
	path := logger.FilePath()
	require.NotEmpty(t, path)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Written to both")
	assert.Contains(t, console.String(), "Written to both")

	files, err := filepath.Glob(filepath.Join(dir, "shiftcipher_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Contains(t, files, path)
	assert.Contains(t, files, filepath.Join(dir, "shiftcipher_2000-01-03_00-00-00.000.log"))
}
