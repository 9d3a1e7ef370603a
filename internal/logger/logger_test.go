package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("resizing %s", "photo.png")

	if got := buf.String(); got != "[DEBUG] resizing photo.png\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestVerboseLevels_Silent(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("debug")
	Info("info")
	Warn("warn")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestInfoAndWarn_Prefixes(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("a")
	Warn("b")

	if got := buf.String(); got != "[INFO] a\n[WARN] b\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestError_AlwaysPrinted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Error("write failed: %v", "disk full")

	if got := buf.String(); got != "[ERROR] write failed: disk full\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestToFile(t *testing.T) {
	defer reset()

	path := filepath.Join(t.TempDir(), "logs", "imageshrink.log")
	closer, err := ToFile(path)
	if err != nil {
		t.Fatalf("ToFile: %v", err)
	}

	Error("boom")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	SetOutput(os.Stderr)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[ERROR] boom") {
		t.Errorf("log file missing entry: %q", data)
	}
}
