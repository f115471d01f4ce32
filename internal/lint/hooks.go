package lint

import (
	"relint/internal/config"
	"relint/internal/editor"
)

// The event hooks below are the integration surface the host editor
// drives. Each maps an editor event onto the core operations; none of
// them block, and all of them tolerate views the core has never seen.

var _ editor.EventHandler = (*Orchestrator)(nil)

// OnNew handles creation of a new buffer: it is marked loaded, its syntax
// recorded, and the applicable checkers bound. No analysis is scheduled.
func (o *Orchestrator) OnNew(v editor.View) {
	o.ui.Lock()
	defer o.ui.Unlock()
	o.onNewLocked(v)
}

func (o *Orchestrator) onNewLocked(v editor.View) {
	id := v.ID()
	o.tracker.MarkLoaded(id)
	o.tracker.RecordSyntax(id, v.Syntax())
	o.registry.Assign(id, v.Syntax())
}

// OnLoad handles a buffer that finished loading from disk.
func (o *Orchestrator) OnLoad(v editor.View) {
	o.OnNew(v)
}

// OnModified handles a buffer edit. A buffer without bound checkers only
// reacts when the edit coincided with a syntax change; a bound buffer is
// re-hit in background mode and cleared otherwise.
func (o *Orchestrator) OnModified(v editor.View) {
	o.ui.Lock()
	defer o.ui.Unlock()

	id := v.ID()
	syntaxChanged := false
	if !o.registry.Bound(id) {
		syntaxChanged = o.checkSyntaxLocked(v)
		if !syntaxChanged {
			return
		}
	}

	if syntaxChanged || o.settings.Current().LintMode == config.ModeBackground {
		o.hitLocked(v)
	} else {
		o.clearLocked(v)
	}
}

// OnActivated handles a view gaining input focus. Settings are reloaded,
// the syntax re-checked, and a never-linted buffer gets its first hit
// when the mode lints eagerly. The status line is refreshed either way.
func (o *Orchestrator) OnActivated(v editor.View) {
	if err := o.settings.Load(); err != nil {
		o.logf("settings reload failed: %v", err)
	}

	o.ui.Lock()
	defer o.ui.Unlock()

	o.checkSyntaxLocked(v)
	id := v.ID()
	if !o.tracker.Analyzed(id) {
		if !o.tracker.Loaded(id) {
			o.onNewLocked(v)
		}
		switch o.settings.Current().LintMode {
		case config.ModeBackground, config.ModeLoadSave:
			o.hitLocked(v)
		}
	}
	o.updateStatusLocked(v)
}

// OnPreSave is invoked before a buffer is written to disk. The core keeps
// no pre-save state: the settings provider diffs against its current
// values on reload, so nothing needs to be captured here.
func (o *Orchestrator) OnPreSave(v editor.View) {}

// OnPostSave handles a completed save. Saving the settings file reloads
// configuration instead of linting. Otherwise a syntax change lints
// immediately (unless manual mode), and an unchanged syntax lints when
// the mode or show_errors_on_save asks for it.
func (o *Orchestrator) OnPostSave(v editor.View) {
	if o.settings.IsSettingsFile(v.FilePath()) {
		if err := o.settings.Load(); err != nil {
			o.logf("settings reload failed: %v", err)
		}
		return
	}

	o.ui.Lock()
	defer o.ui.Unlock()

	id := v.ID()
	syntaxChanged := o.checkSyntaxLocked(v)
	mode := o.settings.Current().LintMode
	showErrors := o.settings.Current().ShowErrorsOnSave

	if syntaxChanged {
		if o.registry.Bound(id) {
			if mode != config.ModeManual {
				o.lintNowLocked(v)
			} else {
				showErrors = false
			}
		} else {
			showErrors = false
		}
	} else {
		if showErrors || mode == config.ModeLoadSave || mode == config.ModeSaveOnly {
			o.lintNowLocked(v)
		} else if mode == config.ModeManual {
			showErrors = false
		}
	}

	if showErrors {
		o.host.ShowErrorList(id)
	}
}

// OnClose purges every trace of the buffer: tracked state, checker
// bindings and any pending debounce request. A completion still in flight
// will find the buffer untracked and discard itself.
func (o *Orchestrator) OnClose(v editor.View) {
	o.ui.Lock()
	defer o.ui.Unlock()
	id := v.ID()
	o.queue.Cancel(id)
	o.registry.Unbind(id)
	o.tracker.Purge(id)
}

// OnSelectionChanged recomputes the status line for the new cursor
// position.
func (o *Orchestrator) OnSelectionChanged(v editor.View) {
	o.ui.Lock()
	defer o.ui.Unlock()
	o.updateStatusLocked(v)
}

// lintNowLocked skips the debounce window: saves lint immediately. The
// request still carries a fresh hit time so late completions from earlier
// passes lose to it.
func (o *Orchestrator) lintNowLocked(v editor.View) {
	id := v.ID()
	o.tracker.MarkAnalyzed(id)
	hit := o.queue.Mint()
	o.tracker.SetLastHit(id, hit)
	if v.Size() == 0 {
		o.registry.Reset(id)
		o.clearLocked(v)
		return
	}
	go o.execute(id, hit)
}
