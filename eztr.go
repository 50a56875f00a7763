// Package eztr is a registry of replacement and custom game messages.
//
// Messages are declared while the registry runs its init functions:
//
//	reg := eztr.New(eztr.Options{Logger: log})
//	reg.OnInit(func(r *eztr.Registry) {
//		r.ReplaceText(0x0C38, msgbuf.DefaultHeader(), true,
//			"Sorry, we only do swords."+ccode.End, nil)
//	})
//	reg.Init()
//
// At display time the host calls Load, which hands out a copy of the stored
// message after running its callback.
package eztr

import (
	"io"
	"os"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/rawbytedev/eztr/pkg/msgbuf"
)

const (
	// HighestID is the highest text id used by the unmodified game.
	HighestID uint16 = 0x354C
	// LastCustomID is the last id handed to a custom message; 0xFFFF is
	// reserved for "no value".
	LastCustomID uint16 = 0xFFFE
)

// DefaultCategory labels dumped game messages.
const DefaultCategory = "Game"

// Callback runs right before a message is displayed. buf holds a copy of the
// stored message and may be rewritten freely; play is the host's opaque game
// state.
type Callback func(buf *msgbuf.Buffer, textID uint16, play any)

// InitFunc declares messages. It runs once, from Init.
type InitFunc func(r *Registry)

type Options struct {
	Logger   *zap.Logger
	DumpMode DumpMode
	Category string
	// Output receives dumped messages. Defaults to os.Stdout.
	Output io.Writer
}

type message struct {
	buf *msgbuf.Buffer
	cb  Callback
}

// Registry stores declared messages and custom message handles.
type Registry struct {
	opts Options
	log  *zap.Logger

	mu           sync.RWMutex
	messages     map[uint16]*message
	handles      map[handleKey]*Handle
	ids          map[*Handle]uint16
	owners       map[uint16]*Handle
	nextCustom   uint32
	inits        []InitFunc
	initializing bool
	initialized  bool
	dumpHooks    []DumpHook
	fullHooks    []DumpHook
}

func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = Logger()
	}
	if opts.Category == "" {
		opts.Category = DefaultCategory
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Registry{
		opts:       opts,
		log:        opts.Logger,
		messages:   make(map[uint16]*message),
		handles:    make(map[handleKey]*Handle),
		ids:        make(map[*Handle]uint16),
		owners:     make(map[uint16]*Handle),
		nextCustom: uint32(HighestID) + 1,
	}
}

// OnInit queues fn to run during Init. Functions run in the order they were
// queued, so a later declaration of the same message wins.
func (r *Registry) OnInit(fn InitFunc) {
	r.mu.Lock()
	done := r.initialized
	if !done {
		r.inits = append(r.inits, fn)
	}
	r.mu.Unlock()
	if done {
		r.ReportError("init function registered after init; it will not run", zap.Error(ErrInitialized))
	}
}

// Init runs the queued init functions, including any they queue themselves.
// Registration calls are only accepted while it runs.
func (r *Registry) Init() error {
	r.mu.Lock()
	if r.initialized || r.initializing {
		r.mu.Unlock()
		return ErrInitialized
	}
	r.initializing = true
	ran := 0
	for len(r.inits) > 0 {
		inits := r.inits
		r.inits = nil
		r.mu.Unlock()
		for _, fn := range inits {
			fn(r)
		}
		ran += len(inits)
		r.mu.Lock()
	}
	r.initializing = false
	r.initialized = true
	n := len(r.messages)
	r.mu.Unlock()
	r.ReportInfo("init complete", zap.Int("messages", n), zap.Int("init_funcs", ran))
	return nil
}

// TextIDs returns the ids of every stored message in ascending order.
func (r *Registry) TextIDs() []uint16 {
	r.mu.RLock()
	ids := make([]uint16, 0, len(r.messages))
	for id := range r.messages {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Stored returns a copy of the message stored for textID, before any
// callback, and whether it has a callback.
func (r *Registry) Stored(textID uint16) (buf *msgbuf.Buffer, hasCallback, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, found := r.messages[textID]
	if !found {
		return nil, false, false
	}
	return m.buf.Clone(), m.cb != nil, true
}
