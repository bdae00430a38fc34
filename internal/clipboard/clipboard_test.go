package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

type stubWriter struct {
	err   error
	calls int
	text  string
}

func (s *stubWriter) WriteText(text string) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.text = text
	return nil
}

func TestChain_StopsAtFirstSuccess(t *testing.T) {
	failing := &stubWriter{err: ErrUnavailable}
	ok := &stubWriter{}
	never := &stubWriter{}

	if err := (Chain{failing, ok, never}).WriteText("#ABCDEF"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ok.text != "#ABCDEF" {
		t.Errorf("expected second writer to receive text, got %q", ok.text)
	}
	if never.calls != 0 {
		t.Errorf("expected writers after a success to be skipped, got %d calls", never.calls)
	}
}

func TestChain_AllFail(t *testing.T) {
	boom := errors.New("boom")
	err := (Chain{&stubWriter{err: ErrUnavailable}, &stubWriter{err: boom}}).WriteText("x")

	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, boom) {
		t.Errorf("expected joined errors, got %v", err)
	}
}

func TestChain_Empty(t *testing.T) {
	if err := (Chain{}).WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestDisabled(t *testing.T) {
	if err := (Disabled{}).WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestSystem_WritesThroughNativeClipboard(t *testing.T) {
	var got string
	origWrite, origUnsupported := writeAll, unsupported
	writeAll = func(text string) error { got = text; return nil }
	unsupported = func() bool { return false }
	t.Cleanup(func() { writeAll, unsupported = origWrite, origUnsupported })

	if err := (System{}).WriteText("#112233"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#112233" {
		t.Errorf("native clipboard got %q, want %q", got, "#112233")
	}
}

func TestSystem_Unsupported(t *testing.T) {
	origUnsupported := unsupported
	unsupported = func() bool { return true }
	t.Cleanup(func() { unsupported = origUnsupported })

	if err := (System{}).WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestSystem_WriteError(t *testing.T) {
	origWrite, origUnsupported := writeAll, unsupported
	writeAll = func(string) error { return errors.New("exit status 1") }
	unsupported = func() bool { return false }
	t.Cleanup(func() { writeAll, unsupported = origWrite, origUnsupported })

	err := (System{}).WriteText("x")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "exit status 1") {
		t.Errorf("expected underlying error in message, got %v", err)
	}
}

func TestOSC52_WritesEscapeSequence(t *testing.T) {
	var buf bytes.Buffer
	w := OSC52{out: &buf, getenv: func(string) string { return "" }}

	if err := w.WriteText("#C0FFEE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;c;") {
		t.Errorf("expected OSC 52 prefix, got %q", out)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte("#C0FFEE"))
	if !strings.Contains(out, encoded) {
		t.Errorf("expected base64 payload %q in %q", encoded, out)
	}
}

func TestOSC52_TmuxPassthrough(t *testing.T) {
	var buf bytes.Buffer
	w := OSC52{out: &buf, getenv: func(k string) string {
		if k == "TMUX" {
			return "/tmp/tmux-1000/default,1,0"
		}
		return ""
	}}

	if err := w.WriteText("#000000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "tmux;") {
		t.Errorf("expected tmux passthrough wrapper, got %q", buf.String())
	}
}

func TestOSC52_NoOutput(t *testing.T) {
	if err := (OSC52{}).WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestNew_Modes(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		mode string
		want string
	}{
		{"", "clipboard.Chain"},
		{"auto", "clipboard.Chain"},
		{"AUTO ", "clipboard.Chain"},
		{"system", "clipboard.System"},
		{"osc52", "clipboard.OSC52"},
		{"off", "clipboard.Disabled"},
	}

	for _, tt := range tests {
		w, err := New(tt.mode, &buf)
		if err != nil {
			t.Errorf("New(%q) unexpected error: %v", tt.mode, err)
			continue
		}
		if got := typeName(w); got != tt.want {
			t.Errorf("New(%q) = %s, want %s", tt.mode, got, tt.want)
		}
	}
}

func TestNew_UnknownMode(t *testing.T) {
	_, err := New("carrier-pigeon", nil)
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("expected mode in error, got %v", err)
	}
}

func typeName(w Writer) string {
	switch w.(type) {
	case Chain:
		return "clipboard.Chain"
	case System:
		return "clipboard.System"
	case OSC52:
		return "clipboard.OSC52"
	case Disabled:
		return "clipboard.Disabled"
	default:
		return "unknown"
	}
}
