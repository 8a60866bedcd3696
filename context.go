package nk

import (
	"iter"
	"log/slog"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/font/basicfont"
)

// Context holds all GUI state. A frame is:
//
//	ctx.InputBegin()
//	ctx.InputMotion(x, y) // ... and other input events
//	ctx.InputEnd()
//	if ctx.Begin("demo", nk.Rect{X: 10, Y: 10, W: 200, H: 300}, nk.WindowTitle|nk.WindowBorder) {
//	    ctx.LayoutRowDynamic(30, 1)
//	    if ctx.Button("ok") { ... }
//	}
//	ctx.End()
//	for cmd := range ctx.Commands() { ... }
//	ctx.Clear()
//
// A Context is not safe for concurrent use.
type Context struct {
	// Input and styling
	input           Input
	style           Style
	clip            Clipboard
	lastWidgetState WidgetState
	buttonBehavior  ButtonBehavior
	stacks          configStacks
	delta           float32
	time            float64

	// Draw output, shared by every window
	memory  *Buffer
	refs    refTable
	overlay CommandBuffer

	// The one editor shared by all edit fields, the window owning it, and
	// a scratch editor that renders fields of EditString while inactive
	textEdit     TextEdit
	editWin      *Window
	inactiveEdit TextEdit

	// Object pools
	windowPool pool[Window]
	panelPool  pool[Panel]
	tablePool  pool[table]

	// Window list in z-order, begin drawn first
	begin   *Window
	end     *Window
	active  *Window
	current *Window
	count   int

	seq          uint
	frameStarted bool

	strict bool
	log    *slog.Logger
}

// New creates a context. Without options it uses a growable arena on the
// Go heap, the 7x13 basic font and the default style.
func New(opts ...Option) *Context {
	ctx := &Context{
		strict: true,
		log:    defaultLogger,
		seq:    1,
	}
	ctx.style = DefaultStyle()
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.memory == nil {
		ctx.memory = NewBuffer(nil, DefaultArenaSize)
	}
	ctx.memory.log = ctx.log
	if ctx.style.Font == nil {
		ctx.style.Font = newMeasuredFont(NewFaceFont(basicfont.Face7x13))
	}
	if ctx.clip == nil {
		ctx.clip = &MemoryClipboard{}
	}
	ctx.stacks.init()
	ctx.overlay.init(ctx.memory, &ctx.refs, true)
	ctx.textEdit.Init(0)
	ctx.textEdit.Clipboard = ctx.clip
	ctx.inactiveEdit.Init(0)
	ctx.inactiveEdit.Clipboard = ctx.clip
	return ctx
}

// DefaultArenaSize is the initial capacity of a growable command arena.
const DefaultArenaSize = 16 * 1024

// Style returns the live style. Changes apply to widgets declared after
// them; prefer the Push functions for scoped overrides.
func (ctx *Context) Style() *Style { return &ctx.style }

// Input returns the input state of the current frame for queries such as
// IsMouseHoveringRect.
func (ctx *Context) Input() *Input { return &ctx.input }

// Memory returns the command arena.
func (ctx *Context) Memory() *Buffer { return ctx.memory }

// Overlay returns a command buffer drawn on top of every window.
func (ctx *Context) Overlay() *CommandBuffer { return &ctx.overlay }

// SetDelta sets the duration of the current frame in seconds. It drives
// scrollbar auto-hiding and double-click detection.
func (ctx *Context) SetDelta(seconds float32) {
	ctx.delta = seconds
	ctx.time += float64(seconds)
}

// InputBegin starts collecting the input of a new frame.
func (ctx *Context) InputBegin() {
	ctx.frameStarted = true
	ctx.input.begin()
}

// InputMotion records the pointer position.
func (ctx *Context) InputMotion(x, y float32) { ctx.input.motion(x, y) }

// InputKey records a key transition.
func (ctx *Context) InputKey(key Key, down bool) { ctx.input.key(key, down) }

// InputButton records a mouse button transition. A second left press
// close enough in time and space also presses ButtonDouble.
func (ctx *Context) InputButton(id MouseButton, x, y float32, down bool) {
	if ctx.input.button(id, x, y, down, ctx.time) {
		ctx.input.button(ButtonDouble, x, y, true, ctx.time)
	}
	if id == ButtonLeft && !down {
		ctx.input.button(ButtonDouble, x, y, false, ctx.time)
	}
}

// InputScroll records wheel movement.
func (ctx *Context) InputScroll(v Vec2) {
	if v.X*v.X+v.Y*v.Y < minScrollDelta*minScrollDelta {
		return
	}
	ctx.input.scroll(v)
}

// InputChar records a typed ASCII byte. Other bytes become utf8.RuneError.
func (ctx *Context) InputChar(c byte) {
	if c >= utf8.RuneSelf {
		ctx.input.char(utf8.RuneError)
		return
	}
	ctx.input.char(rune(c))
}

// InputRune records a typed rune.
func (ctx *Context) InputRune(r rune) { ctx.input.char(r) }

// InputString records typed text.
func (ctx *Context) InputString(s string) {
	for _, r := range s {
		ctx.input.char(r)
	}
}

// InputEnd finishes the input of the frame.
func (ctx *Context) InputEnd() { ctx.input.end() }

// buffers yields the command buffers of the frame in drawing order.
func (ctx *Context) buffers() iter.Seq[*CommandBuffer] {
	return func(yield func(*CommandBuffer) bool) {
		for it := ctx.begin; it != nil; it = it.next {
			if it.flags&WindowHidden != 0 || it.seq != ctx.seq {
				continue
			}
			if !yield(&it.buffer) {
				return
			}
			if p := it.popup.win; p != nil && p.drawn == ctx.seq {
				if !yield(&p.buffer) {
					return
				}
			}
		}
		yield(&ctx.overlay)
	}
}

// Commands iterates the draw commands of the frame: windows back to
// front, each followed by its popup, then the overlay. The context must
// not be modified while iterating.
func (ctx *Context) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for cb := range ctx.buffers() {
			for cmd := range cb.Commands() {
				if !yield(cmd) {
					return
				}
			}
		}
	}
}

// CommandsHash hashes the command stream of the frame. Equal hashes on
// consecutive frames mean the output did not change.
func (ctx *Context) CommandsHash() uint64 {
	d := xxhash.New()
	for cb := range ctx.buffers() {
		cb.hash(d)
	}
	return d.Sum64()
}

// Clear ends the frame: windows not declared this frame are freed along
// with stale popups and state tables, and the command arena is emptied.
// Minimized windows survive without being declared.
func (ctx *Context) Clear() {
	if !ctx.frameStarted {
		return
	}
	if ctx.current != nil {
		ctx.violation(ErrNoActiveWindow, "Clear inside window %q", ctx.current.nameString)
		ctx.current = nil
	}

	for it := ctx.begin; it != nil; {
		next := it.next
		if it.flags&(WindowMinimized|WindowClosed) == WindowMinimized {
			it = next
			continue
		}
		if it.flags&(WindowHidden|WindowClosed) != 0 && it == ctx.active {
			ctx.active = it.prev
			if ctx.active != nil {
				ctx.active.flags &^= WindowROM
			}
		}
		if p := it.popup.win; p != nil && p.seq != ctx.seq {
			ctx.freeWindow(p)
			it.popup.win = nil
			it.popup.active = false
		}
		ctx.reapTables(it, ctx.seq)

		if it.seq != ctx.seq || it.flags&WindowClosed != 0 {
			if it == ctx.active {
				ctx.active = it.prev
				if ctx.active == nil {
					ctx.active = it.next
				}
			}
			ctx.removeWindow(it)
			ctx.freeWindow(it)
			if ctx.active != nil {
				ctx.active.flags &^= WindowROM
			}
		}
		it = next
	}

	ctx.memory.Clear()
	clear(ctx.refs.items)
	ctx.refs.items = ctx.refs.items[:0]
	for it := ctx.begin; it != nil; it = it.next {
		it.buffer.reset()
		if it.popup.win != nil {
			it.popup.win.buffer.reset()
		}
	}
	ctx.overlay.reset()
	ctx.seq++
	ctx.frameStarted = false
}

// Free releases the arena and the shared editor.
func (ctx *Context) Free() {
	for it := ctx.begin; it != nil; {
		next := it.next
		ctx.freeWindow(it)
		it = next
	}
	ctx.begin, ctx.end, ctx.active, ctx.current = nil, nil, nil, nil
	ctx.count = 0
	ctx.memory.Free()
	ctx.textEdit.Free()
	ctx.inactiveEdit.Free()
}

// WindowCount returns the number of live windows.
func (ctx *Context) WindowCount() int { return ctx.count }
