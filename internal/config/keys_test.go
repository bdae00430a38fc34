package config

import (
	"strings"
	"testing"
)

func TestLookup_Exists(t *testing.T) {
	for _, name := range []string{"clipboard", "copy-errors"} {
		spec := Lookup(name)
		if spec == nil {
			t.Fatalf("expected to find key %q, got nil", name)
		}
		if spec.Name != name {
			t.Errorf("expected Name %q, got %q", name, spec.Name)
		}
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	spec := Lookup("  CLIPBOARD ")
	if spec == nil {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if spec.Name != "clipboard" {
		t.Errorf("expected Name %q, got %q", "clipboard", spec.Name)
	}
}

func TestLookup_NotFound(t *testing.T) {
	spec := Lookup("nonexistent-key")
	if spec != nil {
		t.Errorf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeys_AllHaveGetAndSet(t *testing.T) {
	for _, k := range Keys {
		if k.Get == nil {
			t.Errorf("key %q has nil Get function", k.Name)
		}
		if k.Set == nil {
			t.Errorf("key %q has nil Set function", k.Name)
		}
		if k.Description == "" {
			t.Errorf("key %q has empty Description", k.Name)
		}
		if len(k.Allowed) == 0 {
			t.Errorf("key %q has no allowed values", k.Name)
		}
	}
}

func TestKeys_GetSetRoundtrip(t *testing.T) {
	for _, k := range Keys {
		cfg := &Config{}
		k.Set(cfg, "test-value")
		got := k.Get(cfg)
		if got != "test-value" {
			t.Errorf("key %q: Set then Get = %q, want %q", k.Name, got, "test-value")
		}
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(Keys) {
		t.Fatalf("expected %d names, got %d", len(Keys), len(names))
	}
	for i, name := range names {
		if name != Keys[i].Name {
			t.Errorf("index %d: expected %q, got %q", i, Keys[i].Name, name)
		}
	}
}

func TestKeysHelp_ContainsAllKeys(t *testing.T) {
	help := KeysHelp()
	if !strings.Contains(help, "Available keys:") {
		t.Error("expected 'Available keys:' header in help output")
	}
	for _, k := range Keys {
		if !strings.Contains(help, k.Name) {
			t.Errorf("expected key %q in help output", k.Name)
		}
		if !strings.Contains(help, k.Description) {
			t.Errorf("expected description %q in help output", k.Description)
		}
	}
}

func TestValidate(t *testing.T) {
	spec := Lookup("clipboard")

	for _, v := range []string{"auto", "system", "osc52", "off", "OSC52"} {
		if err := spec.Validate(v); err != nil {
			t.Errorf("Validate(%q) unexpected error: %v", v, err)
		}
	}

	err := spec.Validate("xclip")
	if err == nil {
		t.Fatal("expected error for unsupported value")
	}
	if !strings.Contains(err.Error(), "valid: auto, system, osc52, off") {
		t.Errorf("expected allowed values in error, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	if got := Lookup("clipboard").Default(); got != "auto" {
		t.Errorf("clipboard default = %q, want %q", got, "auto")
	}
	if got := Lookup("copy-errors").Default(); got != "show" {
		t.Errorf("copy-errors default = %q, want %q", got, "show")
	}
	if got := (KeySpec{}).Default(); got != "" {
		t.Errorf("empty KeySpec default = %q, want empty", got)
	}
}
