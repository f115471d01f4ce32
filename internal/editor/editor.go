// Package editor declares the contracts the lint core consumes from the
// host editor. The core never talks to a concrete editor; integrations
// implement View and Host over their native API.
package editor

import (
	"relint/internal/buffer"
	"relint/internal/highlight"
)

// View is one open, editable buffer as exposed by the host.
type View interface {
	ID() buffer.ID
	// Size returns the buffer's content length in bytes.
	Size() int
	Content() string
	// FilePath returns the backing file path, or "" for unsaved buffers.
	FilePath() string
	// Syntax returns the buffer's current language mode.
	Syntax() string
	// PrimarySelectionLine returns the 0-based line of the first cursor.
	// ok is false when the view has no selection.
	PrimarySelectionLine() (line int, ok bool)
	// RegionsBySelector returns the regions matching a scope selector,
	// used to restrict checkers to embedded code sections.
	RegionsBySelector(selector string) []highlight.Region

	highlight.Painter

	SetStatus(key, text string)
	EraseStatus(key string)
}

// Host is the surrounding editor beyond a single view.
type Host interface {
	// ViewByID resolves an ID to a live view. ok is false once the buffer
	// has been closed; late lint completions rely on that to discard.
	ViewByID(id buffer.ID) (View, bool)
	// Views lists all currently open views.
	Views() []View
	// ShowErrorList opens the host's error listing for a buffer. Backs the
	// show_errors_on_save option; hosts without such UI may no-op.
	ShowErrorList(id buffer.ID)
}

// EventHandler lists every editor event the core reacts to, one named
// method per hook with a fixed signature.
type EventHandler interface {
	OnNew(v View)
	OnLoad(v View)
	OnModified(v View)
	OnActivated(v View)
	OnPreSave(v View)
	OnPostSave(v View)
	OnClose(v View)
	OnSelectionChanged(v View)
}
