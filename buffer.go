package nk

import "log/slog"

// BufferKind selects whether a Buffer may grow.
type BufferKind int

const (
	BufferDynamic BufferKind = iota // Grows through its Allocator
	BufferFixed                     // Caller-provided memory, never grows
)

// BufferRegion selects the end of a Buffer an allocation is taken from.
type BufferRegion int

const (
	BufferFront BufferRegion = iota // Grows upward from offset 0
	BufferBack                      // Grows downward from the end
	bufferRegionCount
)

// DefaultGrowFactor is the capacity multiplier applied when a dynamic buffer overflows.
const DefaultGrowFactor float32 = 2

// Allocator provides the backing memory of dynamic buffers.
//
// Alloc returns a region of at least size bytes. It may reuse old, but the
// buffer always copies the live content itself, so an implementation never
// has to preserve it. Free releases a region previously returned by Alloc.
type Allocator interface {
	Alloc(old []byte, size int) []byte
	Free(mem []byte)
}

// HeapAllocator allocates from the Go heap.
type HeapAllocator struct{}

// Alloc returns a fresh zeroed slice.
func (HeapAllocator) Alloc(_ []byte, size int) []byte { return make([]byte, size) }

// Free is a no-op; the garbage collector reclaims the memory.
func (HeapAllocator) Free([]byte) {}

// MemoryStatus reports buffer occupancy.
type MemoryStatus struct {
	Size      int // Capacity in bytes
	Allocated int // Bytes in use by both regions
	Needed    int // Bytes requested including alignment padding
	Calls     int // Number of successful allocations
}

type bufferMarker struct {
	active bool
	offset int
}

// Buffer is a linear allocator over one contiguous byte region. Front
// allocations grow from the start, back allocations grow from the end, and
// the two must never meet. Allocations are addressed by byte offsets so
// they stay meaningful when a dynamic buffer relocates.
//
// The zero value is an empty dynamic buffer backed by the Go heap.
type Buffer struct {
	marker     [bufferRegionCount]bufferMarker
	alloc      Allocator
	kind       BufferKind
	mem        []byte
	growFactor float32
	allocated  int // front high-water mark
	back       int // bytes used at the end of mem
	needed     int
	calls      int
	log        *slog.Logger
}

// NewBuffer creates a dynamic buffer with the given initial capacity.
// A nil allocator selects HeapAllocator.
func NewBuffer(alloc Allocator, initial int) *Buffer {
	b := &Buffer{}
	b.Init(alloc, initial)
	return b
}

// NewFixedBuffer creates a buffer over mem that never grows.
func NewFixedBuffer(mem []byte) *Buffer {
	b := &Buffer{}
	b.InitFixed(mem)
	return b
}

// Init prepares b as a dynamic buffer.
func (b *Buffer) Init(alloc Allocator, initial int) {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	*b = Buffer{
		alloc:      alloc,
		kind:       BufferDynamic,
		growFactor: DefaultGrowFactor,
	}
	if initial > 0 {
		b.mem = alloc.Alloc(nil, initial)[:initial]
	}
}

// InitFixed prepares b over caller-provided memory.
func (b *Buffer) InitFixed(mem []byte) {
	*b = Buffer{kind: BufferFixed, mem: mem}
}

// SetGrowFactor changes the capacity multiplier used on overflow.
func (b *Buffer) SetGrowFactor(f float32) {
	if f > 1 {
		b.growFactor = f
	}
}

// Kind reports whether the buffer is fixed or dynamic.
func (b *Buffer) Kind() BufferKind { return b.kind }

// Cap returns the current capacity in bytes.
func (b *Buffer) Cap() int { return len(b.mem) }

// Memory returns the whole backing region. The slice is invalidated by the
// next allocation that grows the buffer.
func (b *Buffer) Memory() []byte { return b.mem }

// Front returns the bytes allocated from the front region.
func (b *Buffer) Front() []byte { return b.mem[:b.allocated] }

// Len returns the front high-water mark.
func (b *Buffer) Len() int { return b.allocated }

// Info reports the current occupancy.
func (b *Buffer) Info() MemoryStatus {
	return MemoryStatus{
		Size:      len(b.mem),
		Allocated: b.allocated + b.back,
		Needed:    b.needed,
		Calls:     b.calls,
	}
}

func alignUp(off, align int) int {
	if align <= 1 {
		return off
	}
	return (off + align - 1) &^ (align - 1)
}

func alignDown(off, align int) int {
	if align <= 1 {
		return off
	}
	return off &^ (align - 1)
}

// Alloc reserves size bytes with the given power-of-two alignment from the
// requested region and returns the offset of the first byte. A fixed buffer
// that cannot satisfy the request returns false; a dynamic one grows.
func (b *Buffer) Alloc(region BufferRegion, size, align int) (int, bool) {
	if size < 0 {
		return 0, false
	}
	for {
		if off, padding, ok := b.fit(region, size, align); ok {
			if region == BufferFront {
				b.allocated = off + size
			} else {
				b.back = len(b.mem) - off
			}
			b.needed += size + padding
			b.calls++
			return off, true
		}
		if b.kind != BufferDynamic || !b.grow(size+align) {
			return 0, false
		}
	}
}

// fit computes the aligned offset for a request. The front and back regions
// are checked together so they can never overlap.
func (b *Buffer) fit(region BufferRegion, size, align int) (off, padding int, ok bool) {
	boundary := len(b.mem) - b.back
	if region == BufferFront {
		off = alignUp(b.allocated, align)
		return off, off - b.allocated, off+size <= boundary
	}
	off = alignDown(boundary-size, align)
	return off, boundary - size - off, off >= b.allocated && boundary-size >= 0
}

// grow reallocates so that at least extra more bytes fit. The back region
// lives at the end of the buffer and is moved to the end of the new memory.
func (b *Buffer) grow(extra int) bool {
	old := b.mem
	used := b.allocated + b.back + extra
	factor := b.growFactor
	if factor <= 1 {
		factor = DefaultGrowFactor
	}
	capacity := int(float32(len(old)) * factor)
	capacity = max(capacity, nextPow2(used))
	alloc := b.alloc
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	mem := alloc.Alloc(old, capacity)
	if len(mem) < capacity {
		return false
	}
	mem = mem[:capacity]
	copy(mem, old[:b.allocated])
	if b.back > 0 {
		copy(mem[capacity-b.back:], old[len(old)-b.back:])
	}
	if len(old) > 0 {
		alloc.Free(old)
	}
	b.mem = mem
	b.logger().Debug("buffer grown", "from", len(old), "to", capacity)
	return true
}

func (b *Buffer) logger() *slog.Logger {
	if b.log != nil {
		return b.log
	}
	return defaultLogger
}

func nextPow2(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

// Mark records the current high-water mark of a region so a later Reset can
// roll back to it.
func (b *Buffer) Mark(region BufferRegion) {
	b.marker[region].active = true
	if region == BufferFront {
		b.marker[region].offset = b.allocated
	} else {
		b.marker[region].offset = b.back
	}
}

// Unmark drops a pending mark without rolling back.
func (b *Buffer) Unmark(region BufferRegion) {
	b.marker[region].active = false
}

// Reset rolls a region back to its mark, or empties it if no mark is set.
// The backing memory is kept.
func (b *Buffer) Reset(region BufferRegion) {
	m := &b.marker[region]
	if region == BufferFront {
		to := 0
		if m.active {
			to = m.offset
		}
		b.needed -= b.allocated - to
		b.allocated = to
	} else {
		to := 0
		if m.active {
			to = m.offset
		}
		b.needed -= b.back - to
		b.back = to
	}
	if b.needed < 0 {
		b.needed = 0
	}
	m.active = false
}

// Clear empties both regions and forgets all marks.
func (b *Buffer) Clear() {
	b.allocated = 0
	b.back = 0
	b.needed = 0
	b.calls = 0
	b.marker = [bufferRegionCount]bufferMarker{}
}

// Free releases the backing memory of a dynamic buffer.
func (b *Buffer) Free() {
	if b.kind == BufferDynamic && b.mem != nil && b.alloc != nil {
		b.alloc.Free(b.mem)
	}
	b.mem = nil
	b.Clear()
}

// truncate shrinks the front region to n bytes.
func (b *Buffer) truncate(n int) {
	if n < b.allocated {
		b.needed -= b.allocated - n
		b.allocated = n
	}
}
