package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoPathDiscards(t *testing.T) {
	logger, closer, err := New("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	logger.Info("dropped")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "huepick.log")

	logger, closer, err := New(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("hidden at info level")
	logger.Info("color applied", "color", "#ABCDEF")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "color applied") || !strings.Contains(out, "#ABCDEF") {
		t.Errorf("expected info record in log, got:\n%s", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Errorf("debug record should be filtered without verbose, got:\n%s", out)
	}
}

func TestNew_VerboseIncludesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huepick.log")

	logger, closer, err := New(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("copy feedback hidden")
	closer.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "copy feedback hidden") {
		t.Errorf("expected debug record, got:\n%s", data)
	}
}

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a fallback logger")
	}

	logger := Discard()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("expected the stored logger to be returned")
	}
}
