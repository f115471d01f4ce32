// Package rpc exposes the lint core to editor hosts over a
// msgpack-framed stdio stream. The host mirrors buffer events in; relint
// streams draw, clear and status commands back out.
package rpc

// Event is one host-to-relint message. Type selects the variant; unused
// fields stay at their zero value.
type Event struct {
	Type   string `msgpack:"type"`
	Buffer int64  `msgpack:"buffer"`

	// Buffer metadata, sent with open/activated/postsave events.
	Syntax string `msgpack:"syntax,omitempty"`
	Path   string `msgpack:"path,omitempty"`

	// Full content sync. Nil means "unchanged"; incremental edits go
	// through Changes instead.
	Content *string `msgpack:"content,omitempty"`
	// Changes applies incremental edits to the mirrored content.
	Changes []ContentChange `msgpack:"changes,omitempty"`

	// Selector regions pushed by the host alongside content updates.
	Regions map[string][]WireRegion `msgpack:"regions,omitempty"`

	// Cursor state for selection events.
	Line         int  `msgpack:"line"`
	HasSelection bool `msgpack:"has_selection"`
}

// Event types accepted from the host.
const (
	EventOpen      = "open"
	EventLoad      = "load"
	EventModified  = "modified"
	EventActivated = "activated"
	EventPreSave   = "pre_save"
	EventPostSave  = "post_save"
	EventClose     = "close"
	EventSelection = "selection"
	EventLint      = "lint"
	EventLintAll   = "lint_all"
	EventShutdown  = "shutdown"
)

// Position addresses a point in mirrored content. Col counts bytes from
// the start of the 0-based line.
type Position struct {
	Line int `msgpack:"line"`
	Col  int `msgpack:"col"`
}

// Range is a half-open [Start, End) span of mirrored content.
type Range struct {
	Start Position `msgpack:"start"`
	End   Position `msgpack:"end"`
}

// ContentChange replaces the Range with Text. A nil Range replaces the
// whole content.
type ContentChange struct {
	Range *Range `msgpack:"range,omitempty"`
	Text  string `msgpack:"text"`
}

// WireRegion is a highlight region on the wire. Offsets are unsigned;
// the host never addresses negative positions.
type WireRegion struct {
	Line  uint32 `msgpack:"line"`
	Start uint32 `msgpack:"start"`
	End   uint32 `msgpack:"end"`
}

// Command is one relint-to-host message.
type Command struct {
	Type   string `msgpack:"type"`
	Buffer int64  `msgpack:"buffer"`

	// Draw/clear payload.
	Scope   string       `msgpack:"scope,omitempty"`
	Regions []WireRegion `msgpack:"regions,omitempty"`

	// Status payload.
	Key  string `msgpack:"key,omitempty"`
	Text string `msgpack:"text,omitempty"`
}

// Command types sent to the host.
const (
	CommandDraw        = "draw"
	CommandClear       = "clear"
	CommandStatus      = "status"
	CommandEraseStatus = "erase_status"
	CommandShowErrors  = "show_errors"
)
