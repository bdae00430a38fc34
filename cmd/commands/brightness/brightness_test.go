package brightness

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"nathanbeddoewebdev/huepick/internal/color"
)

func execBrightness(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return outBuf.String(), err
}

// fields parses "  Key:  value" lines into a map.
func fields(out string) map[string]string {
	m := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		k, v, ok := strings.Cut(strings.TrimSpace(line), ":")
		if ok {
			m[k] = strings.TrimSpace(v)
		}
	}
	return m
}

func TestBrightness_KnownColors(t *testing.T) {
	tests := []struct {
		in         string
		brightness string
		text       string
	}{
		{"#FFFFFF", "255", "#000000"},
		{"#000000", "0", "#FFFFFF"},
		{"000000", "0", "#FFFFFF"},
		{"#FF0000", "76.245", "#FFFFFF"},
		{"#969696", "150", "#FFFFFF"},
		{"#979797", "151", "#000000"},
	}

	for _, tt := range tests {
		out, err := execBrightness(t, tt.in)
		if err != nil {
			t.Fatalf("brightness %s: unexpected error: %v", tt.in, err)
		}
		got := fields(out)
		if got["Brightness"] != tt.brightness {
			t.Errorf("brightness %s = %q, want %q", tt.in, got["Brightness"], tt.brightness)
		}
		if got["Text color"] != tt.text {
			t.Errorf("text color for %s = %q, want %q", tt.in, got["Text color"], tt.text)
		}
	}
}

func TestBrightness_MalformedIsNaN(t *testing.T) {
	out, err := execBrightness(t, "#GG0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := fields(out)
	if got["Brightness"] != "NaN" {
		t.Errorf("expected NaN brightness, got %q", got["Brightness"])
	}
	if got["Text color"] != "#FFFFFF" {
		t.Errorf("expected white text for NaN, got %q", got["Text color"])
	}
}

func TestBrightness_StrictRejectsMalformed(t *testing.T) {
	_, err := execBrightness(t, "--strict", "#GG0000")
	if !errors.Is(err, color.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestBrightness_StrictNormalizes(t *testing.T) {
	out, err := execBrightness(t, "--strict", "f00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := fields(out)
	if got["Color"] != "#FF0000" {
		t.Errorf("expected normalized color, got %q", got["Color"])
	}
	if got["Brightness"] != "76.245" {
		t.Errorf("expected 76.245, got %q", got["Brightness"])
	}
}

func TestBrightness_RequiresArgument(t *testing.T) {
	if _, err := execBrightness(t); err == nil {
		t.Error("expected error without a color argument")
	}
}
