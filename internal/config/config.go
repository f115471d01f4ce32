// Package config loads and watches the relint settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// Mode selects when buffers are re-linted.
type Mode string

const (
	// ModeBackground lints on every modification.
	ModeBackground Mode = "background"
	// ModeLoadSave lints when a buffer is loaded or saved.
	ModeLoadSave Mode = "load/save"
	// ModeSaveOnly lints only on save.
	ModeSaveOnly Mode = "save only"
	// ModeManual lints only on explicit request.
	ModeManual Mode = "manual"
)

// ErrInvalidMode indicates an unrecognized lint_mode value.
var ErrInvalidMode = errors.New("invalid lint_mode")

// Settings are the recognized relint options.
type Settings struct {
	LintMode         Mode    `toml:"lint_mode"`
	Delay            float64 `toml:"delay"`
	ShowErrorsOnSave bool    `toml:"show_errors_on_save"`
	Jobs             int     `toml:"jobs"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		LintMode:         ModeBackground,
		Delay:            0.1,
		ShowErrorsOnSave: false,
		Jobs:             0,
	}
}

// DelayDuration converts the debounce delay to a time.Duration.
func (s Settings) DelayDuration() time.Duration {
	if s.Delay <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(s.Delay * float64(time.Second))
}

func (s Settings) validate() error {
	switch s.LintMode {
	case ModeBackground, ModeLoadSave, ModeSaveOnly, ModeManual:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, s.LintMode)
}

// UpdateFunc observes settings changes. relint is true when the change
// affects lint results (mode or parallelism), prompting a full re-lint;
// false means a redraw is enough.
type UpdateFunc func(relint bool)

// Provider owns the current settings and notifies observers on reload.
// Reads are safe from any goroutine; loads happen on the UI context.
// Observers run outside the provider's lock and may call back into it.
type Provider struct {
	path string

	mu        sync.RWMutex
	current   Settings
	observers []UpdateFunc
}

// NewProvider returns a provider seeded with defaults. path may be empty
// when the integration supplies settings some other way.
func NewProvider(path string) *Provider {
	return &Provider{path: path, current: Default()}
}

// Path returns the settings file path, or "" when none is configured.
func (p *Provider) Path() string { return p.path }

// Current returns the active settings.
func (p *Provider) Current() Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set replaces the active settings directly, bypassing the file. Used by
// hosts that manage configuration themselves. Observers fire as on Load.
func (p *Provider) Set(s Settings) error {
	if err := s.validate(); err != nil {
		return err
	}
	p.apply(s)
	return nil
}

// OnUpdate registers an observer invoked after every effective change.
func (p *Provider) OnUpdate(fn UpdateFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, fn)
}

// Load re-reads the settings file. A missing file resets to defaults; a
// malformed file keeps the previous settings and returns the parse error.
func (p *Provider) Load() error {
	if p.path == "" {
		return nil
	}
	loaded := Default()
	if _, err := os.Stat(p.path); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		if _, err := toml.DecodeFile(p.path, &loaded); err != nil {
			return fmt.Errorf("%s: failed to parse TOML: %w", p.path, err)
		}
		if loaded.LintMode == "" {
			loaded.LintMode = Default().LintMode
		}
		if err := loaded.validate(); err != nil {
			return fmt.Errorf("%s: %w", p.path, err)
		}
	}
	p.apply(loaded)
	return nil
}

// IsSettingsFile reports whether path refers to the provider's settings
// file. The post-save hook uses this to reload instead of linting.
func (p *Provider) IsSettingsFile(path string) bool {
	return p.path != "" && path != "" && path == p.path
}

func (p *Provider) apply(next Settings) {
	p.mu.Lock()
	prev := p.current
	if prev == next {
		p.mu.Unlock()
		return
	}
	p.current = next
	observers := make([]UpdateFunc, len(p.observers))
	copy(observers, p.observers)
	p.mu.Unlock()

	relint := prev.LintMode != next.LintMode || prev.Jobs != next.Jobs
	for _, fn := range observers {
		fn(relint)
	}
}
