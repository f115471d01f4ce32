// Package lint is the debounced, staleness-safe scheduling core: it decides
// when buffers are re-analyzed and commits results only when no newer edit
// has superseded the request that produced them.
package lint

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"relint/internal/buffer"
	"relint/internal/checker"
	"relint/internal/config"
	"relint/internal/editor"
	"relint/internal/highlight"
	"relint/internal/observ"
	"relint/internal/status"
)

// StatusKey is the status-line slot relint writes into.
const StatusKey = "relint"

// CompletionFunc receives the per-checker results of one executed request
// together with the hit time that originated it.
type CompletionFunc func(id buffer.ID, results []checker.Result, hit buffer.HitTime)

// Options configures an Orchestrator.
type Options struct {
	Host     editor.Host
	Registry *checker.Registry
	Settings *config.Provider
	// Completion overrides the default commit path. Tests use this to
	// observe raw completions before they reach the aggregator.
	Completion CompletionFunc
	Trace      bool
	// LogWriter receives log output; defaults to os.Stderr.
	LogWriter io.Writer
}

// Orchestrator owns all mutable lint state and serializes every event
// hook, tracker mutation and rendering call behind one mutex: the Go
// rendition of a single-threaded UI context. Checker execution is the only
// work that runs outside it.
type Orchestrator struct {
	host     editor.Host
	registry *checker.Registry
	settings *config.Provider

	// ui serializes everything except checker execution.
	ui       sync.Mutex
	tracker  *buffer.Tracker
	queue    *queue
	complete CompletionFunc

	baseCtx context.Context
	trace   bool
	logw    io.Writer
}

// New constructs an Orchestrator. Host, Registry and Settings are
// required; New panics on a nil collaborator since the wiring is a
// programming contract, not a runtime condition.
func New(opts Options) *Orchestrator {
	if opts.Host == nil || opts.Registry == nil || opts.Settings == nil {
		panic("lint: Orchestrator requires Host, Registry and Settings")
	}
	logw := opts.LogWriter
	if logw == nil {
		logw = os.Stderr
	}
	o := &Orchestrator{
		host:     opts.Host,
		registry: opts.Registry,
		settings: opts.Settings,
		tracker:  buffer.NewTracker(),
		baseCtx:  context.Background(),
		trace:    opts.Trace,
		logw:     logw,
	}
	o.complete = opts.Completion
	if o.complete == nil {
		o.complete = o.applyResults
	}
	o.queue = newQueue(
		func() time.Duration { return o.settings.Current().DelayDuration() },
		o.execute,
	)
	o.settings.OnUpdate(o.onSettingsUpdated)
	return o
}

// SetContext sets the base context for checker execution. Meant to be
// called once before any events flow; defaults to context.Background().
func (o *Orchestrator) SetContext(ctx context.Context) {
	if ctx != nil {
		o.baseCtx = ctx
	}
}

// Tracker exposes the buffer state tracker for integrations that need
// read access (status panes, error listings). Callers must treat the
// returned data as UI-context state.
func (o *Orchestrator) Tracker() *buffer.Tracker { return o.tracker }

// Hit records an activity that should trigger analysis of the view. It
// mints a new hit time, stores it as the buffer's last hit, and enqueues
// a debounced request. An empty buffer is never scheduled: its checkers
// are reset and its rendered state cleared synchronously instead, and the
// minted hit time is still returned so staleness comparisons downstream
// stay consistent.
func (o *Orchestrator) Hit(v editor.View) buffer.HitTime {
	o.ui.Lock()
	defer o.ui.Unlock()
	return o.hitLocked(v)
}

func (o *Orchestrator) hitLocked(v editor.View) buffer.HitTime {
	id := v.ID()
	o.checkSyntaxLocked(v)
	o.tracker.MarkAnalyzed(id)

	hit := o.queue.Mint()
	o.tracker.SetLastHit(id, hit)

	if v.Size() == 0 {
		o.registry.Reset(id)
		o.clearLocked(v)
		o.tracef("hit %d buffer=%d empty, checkers reset", hit, id)
		return hit
	}

	o.queue.Schedule(id, hit)
	o.tracef("hit %d buffer=%d scheduled", hit, id)
	return hit
}

// LintAll re-hits every open view currently bound to at least one
// checker.
func (o *Orchestrator) LintAll() {
	o.ui.Lock()
	defer o.ui.Unlock()
	for _, v := range o.host.Views() {
		if o.registry.Bound(v.ID()) {
			o.hitLocked(v)
		}
	}
}

// checkSyntaxLocked records the view's syntax and, when it changed,
// rebinds the applicable checkers and clears previously rendered state
// immediately, without waiting for a new analysis. Reports whether the
// syntax changed.
func (o *Orchestrator) checkSyntaxLocked(v editor.View) bool {
	id := v.ID()
	syntax := v.Syntax()
	if !o.tracker.RecordSyntax(id, syntax) {
		return false
	}
	o.registry.Assign(id, syntax)
	o.clearLocked(v)
	o.tracef("syntax buffer=%d rebound to %q", id, syntax)
	return true
}

// clearLocked wipes the view's rendered highlights, stored diagnostics
// and status text.
func (o *Orchestrator) clearLocked(v editor.View) {
	id := v.ID()
	o.tracker.Highlights(id).Clear(v)
	o.tracker.SetHighlights(id, highlight.NewSet())
	o.tracker.SetDiagnostics(id, nil)
	v.EraseStatus(StatusKey)
}

// execute runs one non-debounced-away request. It re-enters the UI
// context to snapshot the buffer, runs the checkers outside it, then
// hands the completion to the registered callback.
func (o *Orchestrator) execute(id buffer.ID, hit buffer.HitTime) {
	o.ui.Lock()
	last, tracked := o.tracker.LastHit(id)
	if !tracked || last > hit {
		// A newer hit replaced this request during the debounce window,
		// or the buffer closed before the timer fired.
		o.ui.Unlock()
		o.tracef("execute %d buffer=%d superseded before start", hit, id)
		return
	}
	v, open := o.host.ViewByID(id)
	if !open {
		o.ui.Unlock()
		return
	}
	checkers := o.registry.CheckersFor(id)
	if len(checkers) == 0 {
		o.ui.Unlock()
		return
	}
	req := checker.Request{
		Buffer:  id,
		Path:    v.FilePath(),
		Content: v.Content(),
		Regions: o.selectorRegionsLocked(v),
	}
	jobs := o.settings.Current().Jobs
	o.ui.Unlock()

	timer := observ.NewTimer()
	phase := timer.Begin("checkers")
	results := checker.RunAll(o.baseCtx, checkers, req, jobs, o.logf)
	timer.End(phase, fmt.Sprintf("buffer=%d n=%d", id, len(checkers)))
	if o.trace {
		o.logf("%s", timer.Summary())
	}

	o.complete(id, results, hit)
}

func (o *Orchestrator) selectorRegionsLocked(v editor.View) map[string][]highlight.Region {
	selectors := o.registry.Selectors(v.ID())
	if len(selectors) == 0 {
		return nil
	}
	regions := make(map[string][]highlight.Region, len(selectors))
	for _, sel := range selectors {
		regions[sel] = v.RegionsBySelector(sel)
	}
	return regions
}

// applyResults is the result aggregator: the single place staleness is
// enforced. A result whose originating hit time is older than the
// buffer's current last hit is discarded without mutation or redraw, as
// is any result for a buffer that has been purged.
func (o *Orchestrator) applyResults(id buffer.ID, results []checker.Result, hit buffer.HitTime) {
	validateResults(results)

	o.ui.Lock()
	defer o.ui.Unlock()

	last, tracked := o.tracker.LastHit(id)
	if !tracked {
		o.tracef("completion %d buffer=%d dropped, buffer purged", hit, id)
		return
	}
	if hit < last {
		o.tracef("completion %d buffer=%d stale, last hit %d", hit, id, last)
		return
	}
	v, open := o.host.ViewByID(id)
	if !open {
		return
	}

	merged := mergeResults(results)
	mergedSet := mergeHighlights(results)

	// Clear-then-draw. Drawing over an earlier draw duplicates marks on
	// hosts that accumulate regions per scope.
	o.tracker.Highlights(id).Clear(v)
	mergedSet.Draw(v)
	o.tracker.SetHighlights(id, mergedSet)
	o.tracker.SetDiagnostics(id, merged)
	o.tracef("completion %d buffer=%d committed, %d diagnostics", hit, id, merged.Total())

	o.updateStatusLocked(v)
}

// UpdateStatus recomputes the view's status text from its committed
// diagnostics and the current cursor position.
func (o *Orchestrator) UpdateStatus(v editor.View) {
	o.ui.Lock()
	defer o.ui.Unlock()
	o.updateStatusLocked(v)
}

func (o *Orchestrator) updateStatusLocked(v editor.View) {
	line := status.NoLine
	if l, ok := v.PrimarySelectionLine(); ok {
		line = l
	}
	text, ok := status.Summarize(o.tracker.Diagnostics(v.ID()), line)
	if !ok {
		v.EraseStatus(StatusKey)
		return
	}
	v.SetStatus(StatusKey, text)
}

// onSettingsUpdated reacts to a settings reload: a lint-affecting change
// re-lints everything, otherwise committed results are redrawn as-is.
func (o *Orchestrator) onSettingsUpdated(relint bool) {
	if relint {
		o.LintAll()
		return
	}
	o.ui.Lock()
	defer o.ui.Unlock()
	for _, v := range o.host.Views() {
		set := o.tracker.Highlights(v.ID())
		set.Clear(v)
		set.Draw(v)
	}
}

func (o *Orchestrator) logf(format string, args ...any) {
	fmt.Fprintf(o.logw, "relint: "+format+"\n", args...)
}

func (o *Orchestrator) tracef(format string, args ...any) {
	if !o.trace {
		return
	}
	o.logf(format, args...)
}
