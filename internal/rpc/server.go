package rpc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"relint/internal/buffer"
	"relint/internal/checker"
	"relint/internal/config"
	"relint/internal/editor"
	"relint/internal/lint"
)

// ErrShutdown signals a graceful stop after receiving a "shutdown" event.
var ErrShutdown = errors.New("rpc shutdown")

// ServerOptions configures the stdio server.
type ServerOptions struct {
	Registry  *checker.Registry
	Settings  *config.Provider
	Trace     bool
	LogWriter io.Writer
}

// Server speaks the msgpack stdio protocol with an editor host. It mirrors
// the host's buffers, feeds editor events into the orchestrator and sends
// highlight and status commands back.
type Server struct {
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
	out    *bufio.Writer
	sendMu sync.Mutex

	mu   sync.Mutex
	docs map[buffer.ID]*doc

	orch *lint.Orchestrator
	logw io.Writer
}

// NewServer constructs a server reading events from in and writing commands
// to out.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	registry := opts.Registry
	if registry == nil {
		registry = checker.NewRegistry()
	}
	settings := opts.Settings
	if settings == nil {
		settings = config.NewProvider("")
	}
	logw := opts.LogWriter
	if logw == nil {
		logw = io.Discard
	}
	bw := bufio.NewWriter(out)
	s := &Server{
		dec:  msgpack.NewDecoder(bufio.NewReader(in)),
		enc:  msgpack.NewEncoder(bw),
		out:  bw,
		docs: make(map[buffer.ID]*doc),
		logw: logw,
	}
	s.orch = lint.New(lint.Options{
		Host:      s,
		Registry:  registry,
		Settings:  settings,
		Trace:     opts.Trace,
		LogWriter: logw,
	})
	return s
}

// Run serves events until shutdown or EOF.
func (s *Server) Run(ctx context.Context) error {
	s.orch.SetContext(ctx)
	for {
		var ev Event
		if err := s.dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode event: %w", err)
		}
		if err := s.handleEvent(&ev); err != nil {
			if errors.Is(err, ErrShutdown) {
				return nil
			}
			return err
		}
	}
}

func (s *Server) handleEvent(ev *Event) error {
	switch ev.Type {
	case EventOpen, EventLoad:
		d := s.upsertDoc(ev)
		if ev.Type == EventLoad {
			s.orch.OnLoad(d)
		} else {
			s.orch.OnNew(d)
		}
	case EventModified:
		if d := s.updateDoc(ev); d != nil {
			s.orch.OnModified(d)
		}
	case EventActivated:
		if d := s.updateDoc(ev); d != nil {
			s.orch.OnActivated(d)
		}
	case EventPreSave:
		if d := s.updateDoc(ev); d != nil {
			s.orch.OnPreSave(d)
		}
	case EventPostSave:
		if d := s.updateDoc(ev); d != nil {
			s.orch.OnPostSave(d)
		}
	case EventClose:
		s.closeDoc(ev)
	case EventSelection:
		if d := s.lookupDoc(ev); d != nil {
			d.setSelection(ev.Line, ev.HasSelection)
			s.orch.OnSelectionChanged(d)
		}
	case EventLint:
		if d := s.updateDoc(ev); d != nil {
			s.orch.Hit(d)
		}
	case EventLintAll:
		s.orch.LintAll()
	case EventShutdown:
		return ErrShutdown
	default:
		s.logf("unknown event type %q", ev.Type)
	}
	return nil
}

// upsertDoc creates the mirror for a buffer or refreshes an existing one.
func (s *Server) upsertDoc(ev *Event) *doc {
	id := buffer.ID(ev.Buffer)
	s.mu.Lock()
	d, ok := s.docs[id]
	if !ok {
		d = &doc{srv: s, id: id}
		s.docs[id] = d
	}
	s.mu.Unlock()
	d.applyEvent(ev)
	return d
}

// updateDoc refreshes an existing mirror. Events for buffers the server has
// never seen are dropped.
func (s *Server) updateDoc(ev *Event) *doc {
	d := s.lookupDoc(ev)
	if d == nil {
		return nil
	}
	d.applyEvent(ev)
	return d
}

func (s *Server) lookupDoc(ev *Event) *doc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[buffer.ID(ev.Buffer)]
}

func (s *Server) closeDoc(ev *Event) {
	id := buffer.ID(ev.Buffer)
	s.mu.Lock()
	d, ok := s.docs[id]
	delete(s.docs, id)
	s.mu.Unlock()
	if ok {
		s.orch.OnClose(d)
	}
}

// ViewByID implements editor.Host.
func (s *Server) ViewByID(id buffer.ID) (editor.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return nil, false
	}
	return d, true
}

// Views implements editor.Host.
func (s *Server) Views() []editor.View {
	s.mu.Lock()
	views := make([]editor.View, 0, len(s.docs))
	for _, d := range s.docs {
		views = append(views, d)
	}
	s.mu.Unlock()
	sort.Slice(views, func(i, j int) bool { return views[i].ID() < views[j].ID() })
	return views
}

// ShowErrorList implements editor.Host.
func (s *Server) ShowErrorList(id buffer.ID) {
	s.send(Command{Type: CommandShowErrors, Buffer: int64(id)})
}

func (s *Server) send(cmd Command) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := s.enc.Encode(cmd); err != nil {
		s.logf("encode command: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.logf("flush command: %v", err)
	}
}

func (s *Server) logf(format string, args ...any) {
	fmt.Fprintf(s.logw, "relint: "+format+"\n", args...)
}
