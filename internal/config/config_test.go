package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relint.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
lint_mode = "save only"
delay = 0.5
show_errors_on_save = true
jobs = 4
`)
	p := NewProvider(path)
	if err := p.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := p.Current()
	if s.LintMode != ModeSaveOnly {
		t.Fatalf("LintMode = %q, want %q", s.LintMode, ModeSaveOnly)
	}
	if !s.ShowErrorsOnSave || s.Jobs != 4 {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if got := s.DelayDuration(); got != 500*time.Millisecond {
		t.Fatalf("DelayDuration = %v, want 500ms", got)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "absent.toml"))
	if err := p.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Current() != Default() {
		t.Fatalf("Current() = %+v, want defaults", p.Current())
	}
}

func TestLoadInvalidModeKeepsPrevious(t *testing.T) {
	path := writeSettings(t, `lint_mode = "sometimes"`)
	p := NewProvider(path)
	if err := p.Load(); err == nil {
		t.Fatal("expected error for invalid lint_mode")
	}
	if p.Current() != Default() {
		t.Fatalf("settings changed on failed load: %+v", p.Current())
	}
}

func TestOnUpdateRelintSignal(t *testing.T) {
	p := NewProvider("")
	var calls []bool
	p.OnUpdate(func(relint bool) { calls = append(calls, relint) })

	next := p.Current()
	next.ShowErrorsOnSave = true
	if err := p.Set(next); err != nil {
		t.Fatalf("Set: %v", err)
	}
	next.LintMode = ModeManual
	if err := p.Set(next); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// No-op set does not notify.
	if err := p.Set(next); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("got %d updates, want 2", len(calls))
	}
	if calls[0] != false || calls[1] != true {
		t.Fatalf("relint flags = %v, want [false true]", calls)
	}
}

func TestDefaultDelayFloor(t *testing.T) {
	s := Settings{Delay: -1}
	if got := s.DelayDuration(); got != 100*time.Millisecond {
		t.Fatalf("DelayDuration = %v, want 100ms floor", got)
	}
}
