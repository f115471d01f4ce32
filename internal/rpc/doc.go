package rpc

import (
	"sync"

	"fortio.org/safecast"

	"relint/internal/buffer"
	"relint/internal/highlight"
)

// doc is the server-side mirror of one host buffer. It implements
// editor.View over the mirrored state and turns paint/status calls into
// outbound commands.
type doc struct {
	srv *Server
	id  buffer.ID

	mu      sync.Mutex
	syntax  string
	path    string
	content string
	regions map[string][]highlight.Region
	selLine int
	selOK   bool
}

func (d *doc) ID() buffer.ID { return d.id }

func (d *doc) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.content)
}

func (d *doc) Content() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.content
}

func (d *doc) FilePath() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path
}

func (d *doc) Syntax() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.syntax
}

func (d *doc) PrimarySelectionLine() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selLine, d.selOK
}

func (d *doc) RegionsBySelector(selector string) []highlight.Region {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]highlight.Region(nil), d.regions[selector]...)
}

func (d *doc) DrawRegions(scope string, regions []highlight.Region) {
	d.srv.send(Command{
		Type:    CommandDraw,
		Buffer:  int64(d.id),
		Scope:   scope,
		Regions: toWire(regions),
	})
}

func (d *doc) ClearRegions(scope string) {
	d.srv.send(Command{
		Type:   CommandClear,
		Buffer: int64(d.id),
		Scope:  scope,
	})
}

func (d *doc) SetStatus(key, text string) {
	d.srv.send(Command{
		Type:   CommandStatus,
		Buffer: int64(d.id),
		Key:    key,
		Text:   text,
	})
}

func (d *doc) EraseStatus(key string) {
	d.srv.send(Command{
		Type:   CommandEraseStatus,
		Buffer: int64(d.id),
		Key:    key,
	})
}

// applyEvent folds the metadata and content carried by an event into the
// mirror.
func (d *doc) applyEvent(ev *Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ev.Syntax != "" {
		d.syntax = ev.Syntax
	}
	if ev.Path != "" {
		d.path = ev.Path
	}
	if ev.Content != nil {
		d.content = *ev.Content
	} else if len(ev.Changes) > 0 {
		d.content = applyChanges(d.content, ev.Changes)
	}
	if ev.Regions != nil {
		regions := make(map[string][]highlight.Region, len(ev.Regions))
		for sel, list := range ev.Regions {
			regions[sel] = fromWire(list)
		}
		d.regions = regions
	}
}

func (d *doc) setSelection(line int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selLine, d.selOK = line, ok
}

func toWire(regions []highlight.Region) []WireRegion {
	out := make([]WireRegion, 0, len(regions))
	for _, r := range regions {
		line, err := safecast.Conv[uint32](r.Line)
		if err != nil {
			continue
		}
		start, err := safecast.Conv[uint32](r.Start)
		if err != nil {
			continue
		}
		end, err := safecast.Conv[uint32](r.End)
		if err != nil {
			continue
		}
		out = append(out, WireRegion{Line: line, Start: start, End: end})
	}
	return out
}

func fromWire(regions []WireRegion) []highlight.Region {
	out := make([]highlight.Region, 0, len(regions))
	for _, r := range regions {
		line, err := safecast.Conv[int](r.Line)
		if err != nil {
			continue
		}
		start, err := safecast.Conv[int](r.Start)
		if err != nil {
			continue
		}
		end, err := safecast.Conv[int](r.End)
		if err != nil {
			continue
		}
		out = append(out, highlight.Region{Line: line, Start: start, End: end})
	}
	return out
}
