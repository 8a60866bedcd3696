package nk

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"

	"github.com/cespare/xxhash/v2"
)

// CommandType tags a draw command record.
type CommandType uint16

const (
	CommandNop CommandType = iota
	CommandScissor
	CommandLine
	CommandCurve
	CommandRect
	CommandRectFilled
	CommandRectMultiColor
	CommandCircle
	CommandCircleFilled
	CommandArc
	CommandArcFilled
	CommandTriangle
	CommandTriangleFilled
	CommandPolygon
	CommandPolygonFilled
	CommandPolyline
	CommandText
	CommandImage
	CommandCustom
	commandTypeCount
)

var commandNames = [...]string{
	"nop", "scissor", "line", "curve", "rect", "rect-filled", "rect-multi-color",
	"circle", "circle-filled", "arc", "arc-filled", "triangle", "triangle-filled",
	"polygon", "polygon-filled", "polyline", "text", "image", "custom",
}

func (t CommandType) String() string {
	if t < commandTypeCount {
		return commandNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", uint16(t))
}

// CustomCallback is invoked by the renderer for CommandCustom records.
type CustomCallback func(bounds Rect, userData any)

// Command is a decoded draw command. Only the fields relevant to Type are set.
type Command struct {
	Type CommandType

	Rect          Rect     // scissor, rects, circles, text, image and custom bounds
	Points        []Vec2   // line, curve, triangle and polygon vertices; arc center
	Color         Color    // stroke, fill or text foreground color
	Background    Color    // text background
	Colors        [4]Color // multi-color rect: left, top, bottom, right
	Rounding      float32
	LineThickness float32
	Radius        float32
	Angles        [2]float32 // arc start and end in radians
	Height        float32    // text height
	Text          string
	Font          Font
	Image         Image
	Callback      CustomCallback
	UserData      any
}

// Record header: type u16, reserved u16, next u32.
const (
	commandHeaderSize = 8
	commandAlign      = 4
)

// refTable holds the values a byte record cannot carry (fonts, callbacks).
// It is shared by every command buffer of a context and emptied per frame.
type refTable struct {
	items []any
}

func (t *refTable) add(v any) uint32 {
	t.items = append(t.items, v)
	return uint32(len(t.items) - 1)
}

func (t *refTable) get(i uint32) any {
	if int(i) < len(t.items) {
		return t.items[i]
	}
	return nil
}

type customRef struct {
	cb   CustomCallback
	data any
}

// CommandBuffer appends draw command records to an arena. Records of one
// buffer form a singly linked list through their next offsets, so several
// buffers can share one arena and interleave their records. Offsets stay
// valid when the arena grows.
type CommandBuffer struct {
	base        *Buffer
	refs        *refTable
	clip        Rect
	useClipping bool
	begin       int
	last        int
	count       int
}

// NewCommandBuffer creates a command buffer over its own growable arena.
func NewCommandBuffer(clipping bool) *CommandBuffer {
	cb := &CommandBuffer{}
	cb.init(NewBuffer(nil, 4*1024), &refTable{}, clipping)
	return cb
}

func (cb *CommandBuffer) init(base *Buffer, refs *refTable, clipping bool) {
	cb.base = base
	cb.refs = refs
	cb.useClipping = clipping
	cb.reset()
}

func (cb *CommandBuffer) reset() {
	cb.begin = 0
	cb.last = 0
	cb.count = 0
	cb.clip = nullRect
}

// Reset forgets all records of this buffer. Arena memory is reclaimed by
// the owner of the arena.
func (cb *CommandBuffer) Reset() { cb.reset() }

// Clip returns the current scissor rectangle.
func (cb *CommandBuffer) Clip() Rect { return cb.clip }

// Len returns the number of records in the buffer.
func (cb *CommandBuffer) Len() int { return cb.count }

// push appends a record with a payload of size bytes and returns the
// payload offset. It fails only when a fixed arena is exhausted.
func (cb *CommandBuffer) push(t CommandType, size int) (int, bool) {
	if cb.base == nil {
		return 0, false
	}
	off, ok := cb.base.Alloc(BufferFront, commandHeaderSize+alignUp(size, commandAlign), commandAlign)
	if !ok {
		return 0, false
	}
	mem := cb.base.Memory()
	binary.LittleEndian.PutUint16(mem[off:], uint16(t))
	binary.LittleEndian.PutUint16(mem[off+2:], 0)
	binary.LittleEndian.PutUint32(mem[off+4:], 0)
	if cb.count == 0 {
		cb.begin = off
	} else {
		binary.LittleEndian.PutUint32(mem[cb.last+4:], uint32(off))
	}
	cb.last = off
	cb.count++
	return off + commandHeaderSize, true
}

// pushString stores s in the arena's back region and returns its offset
// from the end of the arena.
func (cb *CommandBuffer) pushString(s string) (uint32, bool) {
	off, ok := cb.base.Alloc(BufferBack, len(s), 1)
	if !ok {
		return 0, false
	}
	copy(cb.base.Memory()[off:], s)
	return uint32(cb.base.Cap() - off), true
}

// encoder writes little-endian payload fields.
type encoder struct {
	mem []byte
	off int
}

func (e *encoder) u32(v uint32) {
	binary.LittleEndian.PutUint32(e.mem[e.off:], v)
	e.off += 4
}

func (e *encoder) f32(v float32) { e.u32(math.Float32bits(v)) }

func (e *encoder) color(c Color) { e.u32(uint32(c)) }

func (e *encoder) vec(v Vec2) {
	e.f32(v.X)
	e.f32(v.Y)
}

func (e *encoder) rect(r Rect) {
	e.f32(r.X)
	e.f32(r.Y)
	e.f32(r.W)
	e.f32(r.H)
}

// decoder reads fields written by encoder.
type decoder struct {
	mem []byte
	off int
}

func (d *decoder) u32() uint32 {
	v := binary.LittleEndian.Uint32(d.mem[d.off:])
	d.off += 4
	return v
}

func (d *decoder) f32() float32 { return math.Float32frombits(d.u32()) }

func (d *decoder) color() Color { return Color(d.u32()) }

func (d *decoder) vec() Vec2 {
	x := d.f32()
	return Vec2{X: x, Y: d.f32()}
}

func (d *decoder) rect() Rect {
	x, y, w := d.f32(), d.f32(), d.f32()
	return Rect{X: x, Y: y, W: w, H: d.f32()}
}

func (d *decoder) points(n int) []Vec2 {
	pts := make([]Vec2, n)
	for i := range pts {
		pts[i] = d.vec()
	}
	return pts
}

// decode reads the record at off and returns it with the offset of the
// next record of the same buffer (0 at the end of the list).
func (cb *CommandBuffer) decode(off int) (Command, int) {
	mem := cb.base.Memory()
	t := CommandType(binary.LittleEndian.Uint16(mem[off:]))
	next := int(binary.LittleEndian.Uint32(mem[off+4:]))
	d := decoder{mem: mem, off: off + commandHeaderSize}
	cmd := Command{Type: t}

	switch t {
	case CommandNop:
	case CommandScissor:
		cmd.Rect = d.rect()
	case CommandLine:
		cmd.LineThickness = d.f32()
		cmd.Points = d.points(2)
		cmd.Color = d.color()
	case CommandCurve:
		cmd.LineThickness = d.f32()
		cmd.Points = d.points(4)
		cmd.Color = d.color()
	case CommandRect:
		cmd.Rounding = d.f32()
		cmd.LineThickness = d.f32()
		cmd.Rect = d.rect()
		cmd.Color = d.color()
	case CommandRectFilled:
		cmd.Rounding = d.f32()
		cmd.Rect = d.rect()
		cmd.Color = d.color()
	case CommandRectMultiColor:
		cmd.Rect = d.rect()
		for i := range cmd.Colors {
			cmd.Colors[i] = d.color()
		}
	case CommandCircle:
		cmd.LineThickness = d.f32()
		cmd.Rect = d.rect()
		cmd.Color = d.color()
	case CommandCircleFilled:
		cmd.Rect = d.rect()
		cmd.Color = d.color()
	case CommandArc, CommandArcFilled:
		if t == CommandArc {
			cmd.LineThickness = d.f32()
		}
		cmd.Points = d.points(1)
		cmd.Radius = d.f32()
		cmd.Angles[0] = d.f32()
		cmd.Angles[1] = d.f32()
		cmd.Color = d.color()
	case CommandTriangle:
		cmd.LineThickness = d.f32()
		cmd.Points = d.points(3)
		cmd.Color = d.color()
	case CommandTriangleFilled:
		cmd.Points = d.points(3)
		cmd.Color = d.color()
	case CommandPolygon, CommandPolyline:
		cmd.LineThickness = d.f32()
		cmd.Color = d.color()
		cmd.Points = d.points(int(d.u32()))
	case CommandPolygonFilled:
		cmd.Color = d.color()
		cmd.Points = d.points(int(d.u32()))
	case CommandText:
		cmd.Background = d.color()
		cmd.Color = d.color()
		cmd.Rect = d.rect()
		cmd.Height = d.f32()
		if f, ok := cb.refs.get(d.u32()).(Font); ok {
			cmd.Font = f
		}
		rel := int(d.u32())
		n := int(d.u32())
		start := cb.base.Cap() - rel
		cmd.Text = string(mem[start : start+n])
	case CommandImage:
		cmd.Rect = d.rect()
		lo, hi := d.u32(), d.u32()
		cmd.Image.Handle = uint64(hi)<<32 | uint64(lo)
		wh := d.u32()
		cmd.Image.W, cmd.Image.H = uint16(wh), uint16(wh>>16)
		r0, r1 := d.u32(), d.u32()
		cmd.Image.Region = [4]uint16{uint16(r0), uint16(r0 >> 16), uint16(r1), uint16(r1 >> 16)}
		cmd.Color = d.color()
	case CommandCustom:
		cmd.Rect = d.rect()
		if ref, ok := cb.refs.get(d.u32()).(customRef); ok {
			cmd.Callback = ref.cb
			cmd.UserData = ref.data
		}
	default:
		panic(fmt.Errorf("%w: type %d at offset %d", ErrUnknownCommand, uint16(t), off))
	}
	return cmd, next
}

// Commands iterates the records of this buffer in submission order. The
// buffer must not be modified while iterating.
func (cb *CommandBuffer) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		if cb.count == 0 {
			return
		}
		off := cb.begin
		for {
			cmd, next := cb.decode(off)
			if !yield(cmd) || next == 0 {
				return
			}
			off = next
		}
	}
}

// hash folds every record of the buffer into d. Link offsets and table
// indices are skipped so identical frames hash identically regardless of
// how window records interleave in the arena.
func (cb *CommandBuffer) hash(d *xxhash.Digest) {
	if cb.count == 0 {
		return
	}
	mem := cb.base.Memory()
	off := cb.begin
	for {
		payload := off + commandHeaderSize
		d.Write(mem[off : off+2])
		if CommandType(binary.LittleEndian.Uint16(mem[off:])) == CommandText {
			cmd, _ := cb.decode(off)
			d.Write(mem[payload : payload+28])
			d.WriteString(cmd.Text)
		} else {
			d.Write(mem[payload : payload+commandPayloadSize(mem, off)])
		}
		next := int(binary.LittleEndian.Uint32(mem[off+4:]))
		if next == 0 {
			return
		}
		off = next
	}
}

func commandPayloadSize(mem []byte, off int) int {
	t := CommandType(binary.LittleEndian.Uint16(mem[off:]))
	switch t {
	case CommandScissor:
		return 16
	case CommandLine:
		return 24
	case CommandCurve:
		return 40
	case CommandRect:
		return 28
	case CommandRectFilled:
		return 24
	case CommandRectMultiColor:
		return 32
	case CommandCircle:
		return 24
	case CommandCircleFilled:
		return 20
	case CommandArc:
		return 28
	case CommandArcFilled:
		return 24
	case CommandTriangle:
		return 32
	case CommandTriangleFilled:
		return 28
	case CommandPolygon, CommandPolyline:
		n := int(binary.LittleEndian.Uint32(mem[off+commandHeaderSize+8:]))
		return 12 + 8*n
	case CommandPolygonFilled:
		n := int(binary.LittleEndian.Uint32(mem[off+commandHeaderSize+4:]))
		return 8 + 8*n
	case CommandText:
		return 40
	case CommandImage:
		return 40
	case CommandCustom:
		return 20
	}
	return 0
}
