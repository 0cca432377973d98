package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	Info("Test info message")
	if !strings.Contains(consoleBuffer.String(), "Test info message") {
		t.Errorf("Console output missing info message: %s", consoleBuffer.String())
	}

	logContent, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	logStr := string(logContent)
	if !strings.Contains(logStr, "[INFO]") {
		t.Error("Log file missing INFO level")
	}
	if !strings.Contains(logStr, "Test info message") {
		t.Error("Log file missing info message")
	}
}

func TestLoggerLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message")
	Error("Error message")

	logContent, _ := os.ReadFile(logPath)
	logStr := string(logContent)

	// File gets all levels
	for _, level := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(logStr, level) {
			t.Errorf("Log file missing %s level", level)
		}
	}

	// Console should NOT contain DEBUG (verbose=false)
	if strings.Contains(consoleBuffer.String(), "[DEBUG]") {
		t.Error("Console should not show DEBUG when verbose=false")
	}
}

func TestLoggerVerbose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, true); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	Debug("Debug message")

	consoleStr := consoleBuffer.String()
	if !strings.Contains(consoleStr, "[DEBUG]") {
		t.Error("Console should show DEBUG when verbose=true")
	}
	if !strings.Contains(consoleStr, "Debug message") {
		t.Error("Console missing debug message content")
	}
}

func TestLogCellIssue(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	LogCellIssue("Daily History", "B12", os.ErrInvalid, "date parse")

	logContent, _ := os.ReadFile(logPath)
	logStr := string(logContent)

	if !strings.Contains(logStr, "[CELL_ISSUE]") {
		t.Error("Log file missing CELL_ISSUE marker")
	}
	if !strings.Contains(logStr, "Daily History") || !strings.Contains(logStr, "B12") {
		t.Error("Log file missing sheet or cell reference")
	}

	// Console stays clean
	if strings.Contains(consoleBuffer.String(), "[CELL_ISSUE]") {
		t.Error("Console should not show detailed cell issues")
	}
}

func TestGetLogFilePath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()

	if got := GetLogFilePath(); got != logPath {
		t.Errorf("GetLogFilePath() = %q, expected %q", got, logPath)
	}
}

func TestIsVerbose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	if err := Init(&bytes.Buffer{}, logPath, false); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	if IsVerbose() {
		t.Error("IsVerbose() = true, expected false")
	}
	Close()

	if err := Init(&bytes.Buffer{}, logPath, true); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Close()
	if !IsVerbose() {
		t.Error("IsVerbose() = false, expected true")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}
