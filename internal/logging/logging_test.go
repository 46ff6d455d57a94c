package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(42), "unknown(42)"},
	}

	for _, tt := range tests {
		got := tt.level.String()
		if got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestGetLevel_DefaultIsInfo(t *testing.T) {
	// The level is initialized once per process; in a clean test
	// environment without DEBUG or LOG_LEVEL it defaults to info.
	level := GetLevel()
	if level < LevelDebug || level > LevelError {
		t.Errorf("GetLevel() = %d, out of range", level)
	}
}

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	prev := log.Writer()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	fn()
	return buf.String()
}

func TestInfo_IncludesLevelPrefix(t *testing.T) {
	out := captureLog(t, func() {
		Info("hello %s", "world")
	})

	if GetLevel() > LevelInfo {
		if out != "" {
			t.Errorf("Info logged despite level %s", GetLevel())
		}
		return
	}
	if !strings.Contains(out, "[INFO] hello world") {
		t.Errorf("log output = %q, want to contain [INFO] hello world", out)
	}
}

func TestError_AlwaysLogged(t *testing.T) {
	out := captureLog(t, func() {
		Error("boom: %d", 7)
	})

	if !strings.Contains(out, "[ERROR] boom: 7") {
		t.Errorf("log output = %q, want to contain [ERROR] boom: 7", out)
	}
}

func TestDebug_SuppressedAboveDebugLevel(t *testing.T) {
	out := captureLog(t, func() {
		Debug("noisy detail")
	})

	if IsDebugEnabled() {
		if !strings.Contains(out, "[DEBUG] noisy detail") {
			t.Errorf("log output = %q, want debug line", out)
		}
		return
	}
	if strings.Contains(out, "noisy detail") {
		t.Errorf("debug output present at level %s: %q", GetLevel(), out)
	}
}
